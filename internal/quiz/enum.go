package quiz

type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

var AllOptions = []Option{
	OptionA,
	OptionB,
	OptionC,
	OptionD,
}

func (o Option) IsValid() bool {
	for _, v := range AllOptions {
		if o == v {
			return true
		}
	}
	return false
}
