package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/robfig/cron/v3"
	"shipment/pkg/logger"
)

// Job задача, которая запускается по cron-расписанию.
type Job interface {
	// Spec cron-выражение с секундами, например "0 */5 * * * *".
	Spec() string

	Do(context.Context) error

	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Scheduler запускает задачи по расписанию. Запуск, который не успел завершиться
// к следующему тику, не дублируется.
type Scheduler struct {
	log     handlerLogger
	cron    *cron.Cron
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
}

// New timeout ограничивает одно выполнение задачи, 0 - без ограничения.
func New(log handlerLogger, timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		log: log,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: log})),
		),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Scheduler) Register(jobs ...Job) error {
	for _, job := range jobs {
		_, err := s.cron.AddFunc(job.Spec(), func() {
			s.run(job)
		})
		if err != nil {
			return fmt.Errorf("schedule %q with spec %q: %w", job.Info(), job.Spec(), err)
		}

		s.log.Info("job scheduled",
			logger.NewField("job", job.Info()),
			logger.NewField("spec", job.Spec()),
		)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает расписание, отменяет контекст выполняющихся задач
// и ждет их завершения либо отмены ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait running jobs: %w", ctx.Err())
	}
}

func (s *Scheduler) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("scheduled job panic",
				logger.NewField("job", job.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	if err := job.Do(ctx); err != nil {
		s.log.Error("scheduled job failed",
			logger.NewField("job", job.Info()),
			logger.NewField("duration", time.Since(started)),
			logger.NewField("error", err),
		)
	}
}

// cronLogger переходник для сообщений самого cron (пропуски запусков).
type cronLogger struct {
	log handlerLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Warn("cron: "+msg, toFields(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(toFields(keysAndValues), logger.NewField("error", err))
	l.log.Error("cron: "+msg, fields...)
}

func toFields(keysAndValues []interface{}) []logger.Field {
	fields := make([]logger.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields = append(fields, logger.NewField(key, keysAndValues[i+1]))
	}
	return fields
}
