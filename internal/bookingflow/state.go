package bookingflow

// State состояние диалога бронирования
type State int

const (
	StateIdle State = iota
	StateDialogOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDialogOpen:
		return "dialog_open"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Position адрес ячейки сетки: час и индекс корта, оба с нуля
type Position struct {
	Hour  int
	Court int
}

// Form поля формы диалога
type Form struct {
	CustomerName string
	ContactInfo  string
}
