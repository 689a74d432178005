package pipeline

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/kbukum/transduce/transducer"
)

var (
	inc    = func(n int) int { return n + 1 }
	isEven = func(n int) bool { return n%2 == 0 }
)

func TestTransform(t *testing.T) {
	xf := transducer.Pipe(
		transducer.Map[int, int, []int](inc),
		transducer.Filter[int, []int](isEven),
	)
	got, err := Collect(context.Background(), Transform(Range(0, 10, 1), xf))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4, 6, 8, 10}) {
		t.Errorf("got %v, want [2 4 6 8 10]", got)
	}
}

func TestTransform_ChangesType(t *testing.T) {
	xf := transducer.Pipe2(
		transducer.Filter[int, []string](isEven),
		transducer.Map[int, string, []string](strconv.Itoa),
	)
	got, err := Collect(context.Background(), Take(Transform(Naturals(), xf), 3))
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"0", "2", "4"}) {
		t.Errorf("got %v, want [0 2 4]", got)
	}
}

func TestTransform_AllRejected(t *testing.T) {
	none := transducer.Filter[int, []int](func(int) bool { return false })
	got, err := Collect(context.Background(), Transform(FromSlice([]int{1, 2, 3}), none))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestTransform_Lazy(t *testing.T) {
	var mapped []int
	xf := transducer.Map[int, int, []int](func(n int) int {
		mapped = append(mapped, n)
		return n
	})
	got, err := Collect(context.Background(), Take(Transform(Naturals(), xf), 2))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0, 1}) {
		t.Errorf("got %v, want [0 1]", got)
	}
	if !intSliceEqual(mapped, []int{0, 1}) {
		t.Errorf("mapping ran on %v, want only [0 1]", mapped)
	}
}

func TestTransform_SourceError(t *testing.T) {
	src := FromFunc(func(_ context.Context) Iterator[int] {
		return &failingIter{after: 2, err: errors.New("source broke")}
	})
	got, err := Collect(context.Background(), Transform(src, transducer.Map[int, int, []int](inc)))
	if err == nil || err.Error() != "source broke" {
		t.Errorf("expected source error, got %v", err)
	}
	if !intSliceEqual(got, []int{2, 3}) {
		t.Errorf("expected [2 3] before error, got %v", got)
	}
}

func TestTransduce_Sum(t *testing.T) {
	xf := transducer.Pipe(
		transducer.Map[int, int, int](inc),
		transducer.Filter[int, int](isEven),
	)
	got, err := Transduce(context.Background(), FromSlice([]int{0, 1, 2, 3}), xf, transducer.Sum[int], 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %d, want 6", got)
	}
}

func TestTransduce_Count(t *testing.T) {
	xf := transducer.Pipe(
		transducer.Map[int, int, int](inc),
		transducer.Filter[int, int](isEven),
	)
	got, err := Transduce(context.Background(), Range(0, 4, 1), xf, transducer.Count[int], 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestTransduce_SourceErrorKeepsAccumulator(t *testing.T) {
	boom := errors.New("boom")
	src := FromFunc(func(_ context.Context) Iterator[int] {
		return &failingIter{after: 3, err: boom}
	})
	got, err := Transduce(context.Background(), src, transducer.Identity[int, int](), transducer.Sum[int], 0)
	if !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
	if got != 6 {
		t.Errorf("got accumulator %d, want 6", got)
	}
}

func TestTransduce_ClosesSource(t *testing.T) {
	closed := false
	src := FromFunc(func(_ context.Context) Iterator[int] {
		return &closeTracker{Iterator: &sliceIter[int]{items: []int{1}}, closed: &closed}
	})
	if _, err := Transduce(context.Background(), src, transducer.Identity[int, int](), transducer.Sum[int], 0); err != nil {
		t.Fatal(err)
	}
	if !closed {
		t.Error("expected source to be closed")
	}
}

func TestTransduce_PanicPropagates(t *testing.T) {
	boom := errors.New("boom")
	defer func() {
		if v := recover(); v != boom {
			t.Errorf("recovered %v, want %v", v, boom)
		}
	}()
	explode := transducer.Map[int, int, int](func(n int) int {
		if n == 2 {
			panic(boom)
		}
		return n
	})
	_, _ = Transduce(context.Background(), Naturals(), explode, transducer.Sum[int], 0)
	t.Fatal("expected panic")
}

func TestScan_Sum(t *testing.T) {
	got, err := Collect(context.Background(), Take(Scan(Naturals(), transducer.Sum[int], 0), 4))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0, 1, 3, 6}) {
		t.Errorf("got %v, want [0 1 3 6]", got)
	}
}

func TestScan_WithTransducer(t *testing.T) {
	xf := transducer.Pipe(
		transducer.Map[int, int, int](inc),
		transducer.Filter[int, int](isEven),
	)
	got, err := Collect(context.Background(), Take(Scan(Naturals(), xf(transducer.Sum[int]), 0), 4))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0, 2, 2, 6}) {
		t.Errorf("got %v, want [0 2 2 6]", got)
	}
}

func TestScan_RestartsFromSeed(t *testing.T) {
	p := Scan(Range(1, 4, 1), transducer.Sum[int], 10)
	for i := 0; i < 2; i++ {
		got, err := Collect(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		if !intSliceEqual(got, []int{11, 13, 16}) {
			t.Errorf("run %d: got %v, want [11 13 16]", i, got)
		}
	}
}
