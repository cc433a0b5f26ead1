package model

// Settings are shop-level preferences. They ride along in the persisted
// state but carry no ledger semantics.
type Settings struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	TaxRate         int64  `json:"taxRate"`
	ServiceCharge   int64  `json:"serviceCharge"`
	ReceiptFooter   string `json:"receiptFooter"`
	AutoPrint       bool   `json:"autoPrint"`
	BackupReminder  bool   `json:"backupReminder"`
}

func DefaultSettings() *Settings {
	return &Settings{
		BusinessName:    "Nyumil Dimsum",
		BusinessAddress: "Jl. Dimsum Lezat No. 123",
		BusinessPhone:   "(021) 555-7890",
		TaxRate:         0,
		ServiceCharge:   0,
		ReceiptFooter:   "Terima kasih atas pesanannya!",
		AutoPrint:       false,
		BackupReminder:  true,
	}
}
