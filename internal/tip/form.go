package tip

// DefaultPeopleCount is the initial content of the people field.
const DefaultPeopleCount = "1"

// Form is the mutable input state behind a tip screen or session. Every
// mutation recomputes the Result and notifies subscribers before returning.
//
// A Form is owned by a single presentation layer and is not safe for
// concurrent use.
type Form struct {
	input       Input
	result      Result
	subscribers []func(Result)
}

// NewForm returns a Form in its initial state: empty bill and tip, one person,
// no rounding.
func NewForm() *Form {
	f := &Form{input: Input{PeopleCount: DefaultPeopleCount}}
	f.result = Calculate(f.input)
	return f
}

// Subscribe registers fn to receive the Result after every mutation.
func (f *Form) Subscribe(fn func(Result)) {
	f.subscribers = append(f.subscribers, fn)
}

// Input returns the raw field values.
func (f *Form) Input() Input {
	return f.input
}

// Result returns the amounts derived from the current input.
func (f *Form) Result() Result {
	return f.result
}

func (f *Form) SetBillAmount(text string) {
	f.update(func(in *Input) { in.BillAmount = text })
}

func (f *Form) SetTipPercent(text string) {
	f.update(func(in *Input) { in.TipPercent = text })
}

// ApplyPreset overwrites the tip percent field with a preset literal.
func (f *Form) ApplyPreset(percent int) {
	f.SetTipPercent(PresetText(percent))
}

func (f *Form) SetPeopleCount(text string) {
	f.update(func(in *Input) { in.PeopleCount = text })
}

func (f *Form) SetRoundUp(roundUp bool) {
	f.update(func(in *Input) { in.RoundUp = roundUp })
}

func (f *Form) update(mutate func(*Input)) {
	mutate(&f.input)
	f.result = Calculate(f.input)
	for _, fn := range f.subscribers {
		fn(f.result)
	}
}
