package dto

import "time"

// GenerateCodesRequest input to print a batch of anti-counterfeit QR codes.
type GenerateCodesRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	BatchNo   string `json:"batch_no" validate:"required,min=1,max=50"`
	Count     int    `json:"count" validate:"required,min=1,max=100000"`
}

// GenerateCodesResponse the printed batch.
type GenerateCodesResponse struct {
	BatchNo string   `json:"batch_no"`
	Codes   []string `json:"codes"`
}

// RecordScanRequest one consumer scan, posted by the public landing page.
type RecordScanRequest struct {
	Code      string `json:"code" validate:"required,min=1,max=64"`
	Pincode   string `json:"pincode" validate:"omitempty,len=6,numeric"`
	UserAgent string `json:"user_agent" validate:"omitempty,max=500"`
}

// RecordScanResponse verdict shown to the consumer.
type RecordScanResponse struct {
	Genuine    bool   `json:"genuine"`
	FirstScan  bool   `json:"first_scan"`
	Suspicious bool   `json:"suspicious"`
	Message    string `json:"message"`
}

// ScanStatsResponse dashboard aggregates.
type ScanStatsResponse struct {
	From            time.Time          `json:"from"`
	To              time.Time          `json:"to"`
	TotalScans      int64              `json:"total_scans"`
	SuspiciousScans int64              `json:"suspicious_scans"`
	UniqueCodes     int64              `json:"unique_codes"`
	TodayScans      int64              `json:"today_scans"`
	TodaySuspicious int64              `json:"today_suspicious"`
	TopPincodes     []PincodeScanStats `json:"top_pincodes,omitempty"`
}

// PincodeScanStats scan volume of one pincode.
type PincodeScanStats struct {
	Pincode string `json:"pincode"`
	Scans   int64  `json:"scans"`
}
