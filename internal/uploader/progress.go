package uploader

// Progress observes upload phases. Implementations must tolerate being
// called once per item; completed counts from 1 to total.
type Progress interface {
	OnProgress(phase string, completed, total int)
}

type nopProgress struct{}

func (nopProgress) OnProgress(string, int, int) {}

// NopProgress returns an observer that discards all updates.
func NopProgress() Progress {
	return nopProgress{}
}
