package enum

// ActivityType classifies entries in a vendor's activity feed
type ActivityType string

const (
	ActivityNewCustomer   ActivityType = "NEW_CUSTOMER"
	ActivityNewReceipt    ActivityType = "NEW_RECEIPT"
	ActivityBalanceUpdate ActivityType = "BALANCE_UPDATE"
)

func (t ActivityType) String() string {
	return string(t)
}
