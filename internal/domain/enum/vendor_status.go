package enum

// VendorStatus represents the lifecycle state of a vendor account
type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusRejected  VendorStatus = "rejected"
	VendorStatusSuspended VendorStatus = "suspended"
	VendorStatusInactive  VendorStatus = "inactive"
)

func (s VendorStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known lifecycle states
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusRejected, VendorStatusSuspended, VendorStatusInactive:
		return true
	}
	return false
}

// CanLogin reports whether a vendor in this state may authenticate
func (s VendorStatus) CanLogin() bool {
	return s == VendorStatusApproved
}
