package tokinfer

import (
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWorkspace1(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ws := BorrowWorkspace(5)
	defer ws.Release()
	if ws.Len() != 5 {
		t.Errorf("expected workspace of length 5, is %d", ws.Len())
	}
	if len(ws.Cost) != 6 || len(ws.Split) != 6 {
		t.Errorf("expected 6 cells, have %d|%d", len(ws.Cost), len(ws.Split))
	}
}

func TestWorkspaceIsZeroedOnBorrow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ws := BorrowWorkspace(3)
	ws.Cost[2] = math.Inf(1)
	ws.Split[3] = 7
	ws.Release()
	ws = BorrowWorkspace(3)
	defer ws.Release()
	for i := 0; i <= 3; i++ {
		if ws.Cost[i] != 0 || ws.Split[i] != 0 {
			t.Errorf("cell %d not zeroed: %v|%d", i, ws.Cost[i], ws.Split[i])
		}
	}
}

func TestWorkspaceConcurrentBorrow(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ws := BorrowWorkspace(n)
				if ws.Len() != n {
					t.Errorf("expected workspace of length %d, is %d", n, ws.Len())
				}
				ws.Release()
			}
		}(g + 1)
	}
	wg.Wait()
}

func TestNilWorkspace(t *testing.T) {
	var ws *Workspace
	if ws.Len() != 0 {
		t.Errorf("nil workspace should have length 0")
	}
	if ws.String() != "[nil workspace]" {
		t.Errorf("unexpected stringer output %q", ws.String())
	}
	ws.Release() // must not panic
}
