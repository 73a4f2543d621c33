package tokinfer

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// A Workspace is a work area for the minimum-cost dynamic programming
// algorithm of package wordcost. For a run of n characters,
// Cost[i] holds the minimum cost to cover the first i characters, and
// Split[i] holds the length of the final word of this cover.
//
// Workspaces are short-lived objects, needed once per segmentation call.
// To avoid repeated allocation of arrays we will pool them.
// Clients must call Release() after use and must not touch the workspace
// afterwards.
type Workspace struct {
	Cost  []float64 // minimum cost for prefix of length i
	Split []int     // length of last word for prefix of length i
}

// NewWorkspace creates a new Workspace for runs of n characters.
// This is rarely used, as clients rather should call BorrowWorkspace().
//
// see BorrowWorkspace.
func NewWorkspace(n int) *Workspace {
	ws := &Workspace{}
	ws.resize(n)
	return ws
}

func (ws *Workspace) resize(n int) {
	if cap(ws.Cost) < n+1 {
		ws.Cost = make([]float64, n+1)
		ws.Split = make([]int, n+1)
	}
	ws.Cost = ws.Cost[:n+1]
	ws.Split = ws.Split[:n+1]
	for i := range ws.Cost {
		ws.Cost[i] = 0
		ws.Split[i] = 0
	}
}

type workspacePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalWorkspacePool *workspacePool

func init() {
	globalWorkspacePool = &workspacePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			ws := &Workspace{}
			return ws, nil
		})
	globalWorkspacePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalWorkspacePool.opool = pool.NewObjectPool(globalWorkspacePool.ctx, factory, config)
}

// BorrowWorkspace returns a Workspace, prepared for runs of n characters.
// All cells are zeroed. The Workspace is pooled for efficiency.
func BorrowWorkspace(n int) *Workspace {
	o, err := globalWorkspacePool.opool.BorrowObject(globalWorkspacePool.ctx)
	if err != nil {
		CT().Errorf("workspace pool: %v", err)
		return NewWorkspace(n)
	}
	ws := o.(*Workspace)
	ws.resize(n)
	return ws
}

// Release puts the Workspace back into the pool.
func (ws *Workspace) Release() {
	if ws == nil {
		return
	}
	_ = globalWorkspacePool.opool.ReturnObject(globalWorkspacePool.ctx, ws)
}

// Len returns the run length the Workspace is prepared for.
func (ws *Workspace) Len() int {
	if ws == nil || len(ws.Cost) == 0 {
		return 0
	}
	return len(ws.Cost) - 1
}

// Simple stringer for debugging purposes.
func (ws *Workspace) String() string {
	if ws == nil {
		return "[nil workspace]"
	}
	return fmt.Sprintf("[workspace n=%d]", ws.Len())
}
