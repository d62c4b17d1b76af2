package gtimer

import (
	"sync"

	"github.com/godyy/gtimer/timersys"
)

// Controllable 可被 Registry 批量控制的定时器包装器.
type Controllable interface {
	comparable

	// Pause 暂停.
	Pause()

	// Resume 恢复, args 非空时替换回调参数.
	Resume(args ...any)

	// Clear 清除.
	Clear()
}

// Registry 定时器ID到包装器的映射.
// 包装器从启动到清除期间登记在其当前定时器ID下, 暂停期间保留最近一次的ID.
type Registry[T Controllable] struct {
	m *sync.Map
}

// NewRegistry 构造 Registry.
func NewRegistry[T Controllable]() *Registry[T] {
	return &Registry[T]{
		m: &sync.Map{},
	}
}

// Register 登记 tid 对应的包装器.
func (r *Registry[T]) Register(tid timersys.TimerId, t T) {
	r.m.Store(tid, t)
}

// Unregister 注销 tid.
func (r *Registry[T]) Unregister(tid timersys.TimerId) {
	r.m.Delete(tid)
}

// compareAndUnregister 仅当 tid 仍登记为 t 时注销.
func (r *Registry[T]) compareAndUnregister(tid timersys.TimerId, t T) bool {
	return r.m.CompareAndDelete(tid, t)
}

// Get 获取 tid 对应的包装器.
func (r *Registry[T]) Get(tid timersys.TimerId) (T, bool) {
	v, ok := r.m.Load(tid)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len 登记数量.
func (r *Registry[T]) Len() int {
	n := 0
	r.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Range 遍历登记项, f 返回 false 时停止. 零值项被跳过.
func (r *Registry[T]) Range(f func(tid timersys.TimerId, t T) bool) {
	var zero T
	r.m.Range(func(key, value any) bool {
		t := value.(T)
		if t == zero {
			return true
		}
		return f(key.(timersys.TimerId), t)
	})
}

// ClearAll 清除所有包装器.
func (r *Registry[T]) ClearAll() {
	for _, t := range r.snapshot() {
		t.Clear()
	}
}

// PauseAll 暂停所有包装器.
func (r *Registry[T]) PauseAll() {
	for _, t := range r.snapshot() {
		t.Pause()
	}
}

// ResumeAll 恢复所有已暂停的包装器.
func (r *Registry[T]) ResumeAll() {
	for _, t := range r.snapshot() {
		t.Resume()
	}
}

// snapshot 当前登记的包装器. 批量操作会重新登记包装器, 因此先取快照再执行.
func (r *Registry[T]) snapshot() []T {
	var ts []T
	r.Range(func(_ timersys.TimerId, t T) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}
