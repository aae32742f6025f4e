package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"shipment/pkg/logger"
)

// Task периодическая задача процесса.
type Task interface {
	// TTL интервал между запусками, неположительный отключает периодический запуск.
	TTL() time.Duration
	Do(context.Context) error
	Info() string
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New первый прогон всех задач синхронный и параллельный: ошибка или паника в нем
// возвращается сразу, и периодические запуски не стартуют. Дальше задачи
// крутятся до отмены ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() error {
			if err := w.run(warmupCtx, task); err != nil {
				return fmt.Errorf("%s: %w", task.Info(), err)
			}
			return nil
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		ttl := task.TTL()
		if ttl <= 0 {
			log.Warn("non-positive TTL, periodic execution disabled",
				logger.NewField("task", task.Info()),
				logger.NewField("ttl", ttl),
			)
			continue
		}

		w.wg.Add(1)
		go w.loop(ctx, task, ttl)
	}

	return w, nil
}

// Wait ждет выхода всех циклов после отмены контекста из New.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task, ttl time.Duration) {
	defer w.wg.Done()

	taskLog := w.log.With(logger.NewField("task", task.Info()))
	taskLog.Info("periodic execution started", logger.NewField("ttl", ttl))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("periodic execution stopped")
			return
		case <-ticker.C:
			if err := w.run(ctx, task); err != nil {
				taskLog.Error("background task failed", logger.NewField("error", err))
			}
		}
	}
}

// run паника задачи превращается в ошибку.
func (w *Worker) run(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	start := time.Now()
	err = task.Do(ctx)
	w.log.Debug("background task finished",
		logger.NewField("task", task.Info()),
		logger.NewField("duration", time.Since(start)),
	)
	return err
}
