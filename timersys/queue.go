package timersys

import (
	"sync/atomic"
	"time"

	"github.com/godyy/gutils/container/heap"
)

// timerOfQueue 队列中的定时器.
type timerOfQueue struct {
	id        TimerId       // 定时器ID.
	heapIndex int           // 堆索引.
	period    time.Duration // 周期, 0 表示一次性定时器.
	args      any           // 参数.
	cb        TimerFunc     // 回调函数.
	expireAt  int64         // 到期时间.
}

func (t *timerOfQueue) HeapLess(other *timerOfQueue) bool {
	if n := t.expireAt - other.expireAt; n == 0 {
		return t.id < other.id
	} else {
		return n < 0
	}
}

func (t *timerOfQueue) HeapIndex() int {
	return t.heapIndex
}

func (t *timerOfQueue) SetHeapIndex(index int) {
	t.heapIndex = index
}

// timerQueue 按到期时间排序的定时器队列. 非并发安全, 由持有者加锁.
type timerQueue struct {
	timerIdGen uint64                    // 定时器ID生成自增键.
	timerHeap  *heap.Heap[*timerOfQueue] // 定时器最小堆.
	timerMap   map[TimerId]*timerOfQueue // 定时器映射.
}

func newTimerQueue() *timerQueue {
	return &timerQueue{
		timerHeap: heap.NewHeap[*timerOfQueue](),
		timerMap:  make(map[TimerId]*timerOfQueue),
	}
}

// genTimerId 生成定时器ID.
func (q *timerQueue) genTimerId() TimerId {
	timerId := atomic.AddUint64(&q.timerIdGen, 1)
	if timerId == TimerIdNone {
		timerId = atomic.AddUint64(&q.timerIdGen, 1)
	}
	return timerId
}

// newTimer 校验参数并构造定时器, 到期时间为 now+delay. 负的 delay 按 0 处理.
func (q *timerQueue) newTimer(now int64, delay, period time.Duration, args any, cb TimerFunc) *timerOfQueue {
	if period < 0 {
		panic("period must >= 0")
	}

	if cb == nil {
		panic("callback func is nil")
	}

	if delay < 0 {
		delay = 0
	}

	return &timerOfQueue{
		id:        q.genTimerId(),
		heapIndex: -1,
		period:    period,
		args:      args,
		cb:        cb,
		expireAt:  now + int64(delay),
	}
}

// add 添加定时器, 返回其是否位于堆顶.
func (q *timerQueue) add(t *timerOfQueue) bool {
	q.timerHeap.Push(t)
	q.timerMap[t.id] = t
	return t == q.timerHeap.Top()
}

// remove 移除定时器. 返回定时器是否存在, 以及移除前是否位于堆顶.
func (q *timerQueue) remove(tid TimerId) (exists, top bool) {
	t, exists := q.timerMap[tid]
	if !exists {
		return false, false
	}
	top = t == q.timerHeap.Top()
	q.timerHeap.Remove(t.heapIndex)
	delete(q.timerMap, t.id)
	return true, top
}

// len 定时器数量.
func (q *timerQueue) len() int {
	return q.timerHeap.Len()
}

// nextExpireAt 返回堆顶定时器的到期时间.
func (q *timerQueue) nextExpireAt() (int64, bool) {
	if q.timerHeap.Len() == 0 {
		return 0, false
	}
	return q.timerHeap.Top().expireAt, true
}

// popExpired 取出一个在 now 时刻已到期的定时器.
// 周期性定时器按周期推进到期时间并留在队列中，一次性定时器被移除.
func (q *timerQueue) popExpired(now int64, args *TimerArgs) (cb TimerFunc, expireAt int64, ok bool) {
	if q.timerHeap.Len() == 0 {
		return nil, 0, false
	}
	t := q.timerHeap.Top()
	if t.expireAt > now {
		return nil, 0, false
	}
	cb = t.cb
	expireAt = t.expireAt
	args.TID = t.id
	args.Args = t.args
	if t.period > 0 {
		t.expireAt += int64(t.period)
		q.timerHeap.Fix(t.heapIndex)
	} else {
		q.timerHeap.Remove(t.heapIndex)
		delete(q.timerMap, t.id)
	}
	return cb, expireAt, true
}
