package order

// Status is the lifecycle state of an order
type Status string

const (
	StatusPending         Status = "pending"
	StatusPaymentVerified Status = "payment_verified"
	StatusConfirmed       Status = "confirmed"
	StatusProcessing      Status = "processing"
	StatusReadyForPickup  Status = "ready_for_pickup"
	StatusPickedUp        Status = "picked_up"
	StatusCancelled       Status = "cancelled"
	StatusRejected        Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaymentVerified, StatusConfirmed, StatusProcessing,
		StatusReadyForPickup, StatusPickedUp, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions leave this status
func (s Status) IsTerminal() bool {
	switch s {
	case StatusPickedUp, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Actor identifies who is driving a status change
type Actor string

const (
	ActorBuyer  Actor = "buyer"
	ActorSeller Actor = "seller"
	ActorAdmin  Actor = "admin"
)

type transition struct {
	from Status
	to   Status
}

// transitions is the single source of truth for the order state machine.
// Every status-mutating operation goes through CanTransition.
var transitions = map[transition]Actor{
	{StatusPending, StatusPaymentVerified}:        ActorAdmin,
	{StatusPending, StatusRejected}:               ActorAdmin,
	{StatusPending, StatusConfirmed}:              ActorSeller,
	{StatusPending, StatusCancelled}:              ActorBuyer,
	{StatusPaymentVerified, StatusConfirmed}:      ActorSeller,
	{StatusPaymentVerified, StatusProcessing}:     ActorSeller,
	{StatusConfirmed, StatusProcessing}:           ActorSeller,
	{StatusConfirmed, StatusCancelled}:            ActorBuyer,
	{StatusProcessing, StatusReadyForPickup}:      ActorSeller,
	{StatusProcessing, StatusCancelled}:           ActorBuyer,
	{StatusReadyForPickup, StatusPickedUp}:        ActorSeller,
}

// CanTransition reports whether actor may move an order from one status to another
func CanTransition(from, to Status, actor Actor) bool {
	allowed, ok := transitions[transition{from, to}]
	return ok && allowed == actor
}
