package constants

// Status enrollment (urutan alur: JOIN → SCANNED/ATTENDED/REJECTED)
const (
	EnrollStatusJoin     = "JOIN"
	EnrollStatusScanned  = "SCANNED"
	EnrollStatusAttended = "ATTENDED"
	EnrollStatusRejected = "REJECTED"
)

// Status absensi harian
const (
	AttendancePresent = "PRESENT"
)

// Tipe event
const (
	EventTypeInside  = "INSIDE"
	EventTypeOutside = "OUTSIDE"
)

// IsValidEnrollStatus memeriksa apakah status termasuk enum yang dikenal
func IsValidEnrollStatus(s string) bool {
	switch s {
	case EnrollStatusJoin, EnrollStatusScanned, EnrollStatusAttended, EnrollStatusRejected:
		return true
	}
	return false
}
