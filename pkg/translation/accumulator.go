package translation

// Accumulation 单个请求的累计译文，只增不减
type Accumulation struct {
	text   string
	deltas int
}

// Text 已累计的译文
func (a Accumulation) Text() string {
	return a.text
}

// Deltas 已拼接的非空增量数量
func (a Accumulation) Deltas() int {
	return a.deltas
}

// Accumulate 处理一段增量，返回新的状态以及是否需要回调 OnStream。
// 只有 is_finished 明确为 false 且文本非空的增量才会拼接，流何时结束以传输层为准。
func Accumulate(state Accumulation, delta Delta) (Accumulation, bool) {
	if !delta.Unfinished || delta.Text == "" {
		return state, false
	}
	return Accumulation{
		text:   state.text + delta.Text,
		deltas: state.deltas + 1,
	}, true
}
