package proto

// User is an identity handed over by the identity provider.
type User interface {
	// ID returns the user's stable opaque identifier.
	ID() string
	// DisplayName returns the user's display name. It may be empty.
	DisplayName() string
}

// Identity is a User backed by plain values.
type Identity struct {
	UID  string
	Name string
}

var _ User = Identity{}

// ID implements User.
func (i Identity) ID() string { return i.UID }

// DisplayName implements User.
func (i Identity) DisplayName() string { return i.Name }
