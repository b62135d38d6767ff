package entity

import "time"

// ScanCode is a printed anti-counterfeit QR code on a bottle or box.
// A code is claimed by its first scan; later scans of the same code are
// recorded as suspicious.
type ScanCode struct {
	Code      string
	ProductID string
	BatchNo   string
	PrintedAt time.Time
}

// ScanEvent is one consumer scan of a printed code.
type ScanEvent struct {
	ID         string
	Code       string
	Pincode    string
	Suspicious bool // true when the code had already been claimed
	UserAgent  string
	ScannedAt  time.Time
}

// ScanStats are dashboard aggregates over scan events.
type ScanStats struct {
	TotalScans      int64
	SuspiciousScans int64
	UniqueCodes     int64
	TopPincodes     []PincodeScanCount
}

// PincodeScanCount is scan volume for one postal code.
type PincodeScanCount struct {
	Pincode string
	Scans   int64
}
