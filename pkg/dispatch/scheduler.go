package dispatch

// Scheduler runs a task after the current call stack unwinds. Execute uses it
// for the unique-prefix path only.
type Scheduler interface {
	Defer(task func())
}

// Drainer is implemented by schedulers that hold tasks until asked to run them.
type Drainer interface {
	Drain()
}

type SchedulerFunc func(task func())

func (f SchedulerFunc) Defer(task func()) {
	f(task)
}

// Inline runs deferred tasks immediately.
var Inline Scheduler = SchedulerFunc(func(task func()) { task() })

// Queue is a cooperative FIFO scheduler. Not safe for concurrent use.
type Queue struct {
	tasks []func()
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Defer(task func()) {
	q.tasks = append(q.tasks, task)
}

// Drain runs queued tasks in order, including tasks queued while draining.
func (q *Queue) Drain() {
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		task()
	}
}

func (q *Queue) Len() int {
	return len(q.tasks)
}
