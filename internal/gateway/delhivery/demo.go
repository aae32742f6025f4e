package delhivery

import (
	"fmt"
	"sync"
	"time"

	"shipment/internal/entities"
)

const demoPrefix = "DEMO"

// demoGenerator выдает номера вида DEMO<utc timestamp><seq>. Префикс не цифровой,
// поэтому с настоящими накладными перевозчика они не пересекаются.
type demoGenerator struct {
	mu  sync.Mutex
	seq uint32
	now func() time.Time
}

func newDemoGenerator() *demoGenerator {
	return &demoGenerator{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (g *demoGenerator) generate(count int) []entities.Waybill {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	stamp := now.Format("20060102150405")

	waybills := make([]entities.Waybill, 0, count)
	for range count {
		g.seq = (g.seq + 1) % 1000000
		waybills = append(waybills, entities.Waybill{
			Code:        fmt.Sprintf("%s%s%06d", demoPrefix, stamp, g.seq),
			Status:      entities.WaybillGenerated,
			Source:      entities.WaybillSourceDemo,
			GeneratedAt: now,
		})
	}
	return waybills
}
