package game

// TaskProgress 模拟的外部任务进度（演示程序的进度来源）
//
// 每次 Update 按 deltaTime 推进；进度会略微越过 1.0（用于展示进度条的钳制），
// 到达 Overshoot 后停留 HoldTime 秒再从 0 重新开始。
type TaskProgress struct {
	Duration  float64 // 从 0 到 1 所需时间（秒）
	Overshoot float64 // 允许越过的上限（如 1.2）
	HoldTime  float64 // 到达上限后的停留时间（秒）

	elapsed  float64
	held     float64
	paused   bool
	restarts int
}

// NewTaskProgress 创建模拟任务
// duration <= 0 时使用 1 秒
func NewTaskProgress(duration float64) *TaskProgress {
	if duration <= 0 {
		duration = 1
	}
	return &TaskProgress{
		Duration:  duration,
		Overshoot: 1.2,
		HoldTime:  1.0,
	}
}

// Update 推进任务
func (tp *TaskProgress) Update(deltaTime float64) {
	if tp.paused || deltaTime <= 0 {
		return
	}

	limit := tp.Duration * tp.Overshoot
	if tp.elapsed < limit {
		tp.elapsed += deltaTime
		if tp.elapsed > limit {
			tp.elapsed = limit
		}
		return
	}

	tp.held += deltaTime
	if tp.held >= tp.HoldTime {
		tp.elapsed = 0
		tp.held = 0
		tp.restarts++
	}
}

// Fraction 当前进度（0 ~ Overshoot，未钳制）
func (tp *TaskProgress) Fraction() float64 {
	return tp.elapsed / tp.Duration
}

// Pause 暂停
func (tp *TaskProgress) Pause() { tp.paused = true }

// Resume 继续
func (tp *TaskProgress) Resume() { tp.paused = false }

// TogglePause 切换暂停状态，返回切换后是否暂停
func (tp *TaskProgress) TogglePause() bool {
	tp.paused = !tp.paused
	return tp.paused
}

// IsPaused 是否暂停
func (tp *TaskProgress) IsPaused() bool { return tp.paused }

// Restarts 已重新开始的次数
func (tp *TaskProgress) Restarts() int { return tp.restarts }
