package carousel

// OptionLog records the option last chosen at each step index. Indices are
// sparse. It only drives highlighting and never gates anything.
type OptionLog struct {
	chosen map[int]string
}

func NewOptionLog() *OptionLog {
	return &OptionLog{chosen: map[int]string{}}
}

func (o *OptionLog) Set(index int, option string) {
	if o.chosen == nil {
		o.chosen = map[int]string{}
	}
	o.chosen[index] = option
}

func (o *OptionLog) Get(index int) (string, bool) {
	option, ok := o.chosen[index]
	return option, ok
}

func (o *OptionLog) Clear() {
	o.chosen = map[int]string{}
}

func (o *OptionLog) Len() int {
	return len(o.chosen)
}
