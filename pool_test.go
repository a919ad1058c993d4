package md2hwpx

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestConverterPool_Convert(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	res, err := pool.Convert("default", Input{Source: []byte("# A\n")})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.HWPX) == 0 {
		t.Error("empty archive")
	}
}

func TestConverterPool_EmptyPresetUsesDefault(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1)
	a, err := pool.Convert("", Input{Source: []byte("# A\n")})
	if err != nil {
		t.Fatal(err)
	}
	b, err := pool.Convert(DefaultPreset, Input{Source: []byte("# A\n")})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.HWPX, b.HWPX) {
		t.Error("empty preset differs from default preset")
	}
}

func TestConverterPool_UnknownPreset(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1)
	_, err := pool.Convert("bogus", Input{Source: []byte("x")})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestConverterPool_ConcurrentConversions(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(4)
	src := []byte("# T\n\n- a\n- b\n\n| x |\n|---|\n| 1 |\n")

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := pool.Convert("default", Input{Source: src})
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = res.HWPX
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if !bytes.Equal(results[0], results[i]) {
			t.Fatalf("conversion %d differs; conversions share state", i)
		}
	}
}

func TestConverterPool_Size(t *testing.T) {
	t.Parallel()

	if got := NewConverterPool(3).Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
	if got := NewConverterPool(0).Size(); got != MinPoolSize {
		t.Errorf("Size() = %d, want clamped to %d", got, MinPoolSize)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("explicit workers: got %d, want 3", got)
	}
	if got := ResolvePoolSize(100); got != MaxPoolSize {
		t.Errorf("oversized workers: got %d, want %d", got, MaxPoolSize)
	}
	auto := ResolvePoolSize(0)
	if auto < MinPoolSize || auto > MaxPoolSize {
		t.Errorf("auto size %d outside [%d, %d]", auto, MinPoolSize, MaxPoolSize)
	}
}
