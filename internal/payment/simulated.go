package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/nanwallalit20/home-task-payment-providers/pkg/common"
)

// SimulatedProvider stands in for a real gateway. It accepts or
// declines with a fixed success probability and reports a nominal
// processing time instead of doing I/O.
type SimulatedProvider struct {
	mu             sync.Mutex
	random         *rand.Rand
	name           string
	prefix         string
	methods        []string
	successRate    float64
	processingTime time.Duration
	failureMessage string
}

// NewSimulatedProvider builds a provider claiming the given methods.
// successRate is clamped to [0, 1].
func NewSimulatedProvider(name, prefix string, methods []string, successRate float64,
	processingTime time.Duration, failureMessage string) *SimulatedProvider {
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}
	return &SimulatedProvider{
		random:         rand.New(rand.NewSource(time.Now().UnixNano())),
		name:           name,
		prefix:         prefix,
		methods:        methods,
		successRate:    successRate,
		processingTime: processingTime,
		failureMessage: failureMessage,
	}
}

func (p *SimulatedProvider) Name() string { return p.name }

func (p *SimulatedProvider) SupportedMethods() []string {
	out := make([]string, len(p.methods))
	copy(out, p.methods)
	return out
}

func (p *SimulatedProvider) Supports(method string) bool {
	for _, m := range p.methods {
		if m == method {
			return true
		}
	}
	return false
}

// Process rolls against the success rate and returns the outcome.
func (p *SimulatedProvider) Process(ctx context.Context, req Request) Outcome {
	_ = ctx
	if p.roll() {
		return Outcome{
			Success:        true,
			TransactionID:  p.transactionID(),
			Provider:       p.name,
			ProcessingTime: p.processingTime,
		}
	}
	return Outcome{
		Success:  false,
		Provider: p.name,
		Err:      p.failureMessage,
	}
}

func (p *SimulatedProvider) roll() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.Float64() <= p.successRate
}

// transactionID yields "<PREFIX>_TXN_<suffix>" with a unique suffix.
func (p *SimulatedProvider) transactionID() string {
	return fmt.Sprintf("%s_TXN_%s", p.prefix, common.NextID())
}
