package status

// Well-known ids of the default catalogue. The workflow policy refers to these.
const (
	IDEstimateDone         uint = 1
	IDLOAApproved          uint = 5
	IDPartialPartsReceived uint = 13
	IDPartsComplete        uint = 14
	IDForScheduling        uint = 21
	IDScheduledForRepair   uint = 22
	IDOngoingBodyWork      uint = 24
	IDOngoingBodyPaint     uint = 25
	IDReleased             uint = 33
	IDBillingPending       uint = 41
	IDPaid                 uint = 42
)

// DefaultCatalogue is the status reference data seeded into a fresh database.
func DefaultCatalogue() []Status {
	return []Status{
		{ID: IDEstimateDone, Category: CategoryApproval, Name: "Estimate Done", ColorCode: "#95a5a6", Order: 1},
		{ID: 2, Category: CategoryApproval, Name: "Submitted to Insurance", ColorCode: "#7f8c8d", Order: 2},
		{ID: 3, Category: CategoryApproval, Name: "For Inspection", ColorCode: "#f1c40f", Order: 3},
		{ID: 4, Category: CategoryApproval, Name: "Awaiting LOA", ColorCode: "#e67e22", Order: 4},
		{ID: IDLOAApproved, Category: CategoryApproval, Name: "LOA Approved", ColorCode: "#27ae60", Order: 5},

		{ID: 11, Category: CategoryParts, Name: "Parts Ordered", ColorCode: "#3498db", Order: 1},
		{ID: 12, Category: CategoryParts, Name: "Waiting for Parts", ColorCode: "#e74c3c", Order: 2},
		{ID: IDPartialPartsReceived, Category: CategoryParts, Name: "Partial Parts Received", ColorCode: "#f39c12", Order: 3},
		{ID: IDPartsComplete, Category: CategoryParts, Name: "Parts Complete", ColorCode: "#2ecc71", Order: 4},

		{ID: IDForScheduling, Category: CategoryRepair, Name: "For Scheduling", ColorCode: "#9b59b6", Order: 1},
		{ID: IDScheduledForRepair, Category: CategoryRepair, Name: "Scheduled for Repair", ColorCode: "#8e44ad", Order: 2},
		{ID: 23, Category: CategoryRepair, Name: "Ongoing Tinsmith", ColorCode: "#2980b9", Order: 3},
		{ID: IDOngoingBodyWork, Category: CategoryRepair, Name: "Ongoing Body Work", ColorCode: "#2980b9", Order: 4},
		{ID: IDOngoingBodyPaint, Category: CategoryRepair, Name: "Ongoing Body Paint", ColorCode: "#16a085", Order: 5},
		{ID: 26, Category: CategoryRepair, Name: "Reassembly", ColorCode: "#1abc9c", Order: 6},
		{ID: 27, Category: CategoryRepair, Name: "Quality Check", ColorCode: "#34495e", Order: 7},

		{ID: 31, Category: CategoryPickup, Name: "Ready for Release", ColorCode: "#27ae60", Order: 1},
		{ID: 32, Category: CategoryPickup, Name: "Customer Notified", ColorCode: "#2ecc71", Order: 2},
		{ID: IDReleased, Category: CategoryPickup, Name: "Released", ColorCode: "#16a085", Order: 3},

		{ID: IDBillingPending, Category: CategoryBilling, Name: "Pending", ColorCode: "#e67e22", Order: 1},
		{ID: IDPaid, Category: CategoryBilling, Name: "Paid", ColorCode: "#27ae60", Order: 2},

		{ID: 51, Category: CategoryDismantle, Name: "Total Wreck", ColorCode: "#c0392b", Order: 1},
	}
}
