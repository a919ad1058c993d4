package md2hwpx

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent conversions; beyond this, memory spent
	// on in-flight archives outweighs the parallelism gain.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the process serving the requests.
	cpuDivisor = 2
)

// ConverterPool bounds concurrent conversions for servers that fan
// requests out over worker goroutines. Converters are created lazily per
// preset on first acquire and reused afterwards; they are immutable, so
// sharing is safe.
type ConverterPool struct {
	sem chan struct{}

	mu         sync.Mutex
	converters map[string]*Converter
}

// NewConverterPool creates a pool allowing n conversions in flight.
func NewConverterPool(n int) *ConverterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ConverterPool{
		sem:        make(chan struct{}, n),
		converters: make(map[string]*Converter),
	}
}

// Convert runs one conversion under the pool's concurrency bound,
// blocking while all slots are in use.
func (p *ConverterPool) Convert(preset string, input Input) (*ConvertResult, error) {
	conv, err := p.converter(preset)
	if err != nil {
		return nil, err
	}

	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	return conv.Convert(input)
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int { return cap(p.sem) }

func (p *ConverterPool) converter(preset string) (*Converter, error) {
	if preset == "" {
		preset = DefaultPreset
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if conv, ok := p.converters[preset]; ok {
		return conv, nil
	}
	conv, err := NewConverter(WithPreset(preset))
	if err != nil {
		return nil, err
	}
	p.converters[preset] = conv
	return conv, nil
}

// ResolvePoolSize determines the pool size: an explicit worker count wins
// (capped at MaxPoolSize), otherwise half the available CPUs clamped to
// [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		if workers > MaxPoolSize {
			return MaxPoolSize
		}
		return workers
	}
	size := runtime.GOMAXPROCS(0) / cpuDivisor
	if size < MinPoolSize {
		return MinPoolSize
	}
	if size > MaxPoolSize {
		return MaxPoolSize
	}
	return size
}
