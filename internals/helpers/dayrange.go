package helper

import "time"

// DayRangeUTC menormalkan sebuah timestamp ke window satu hari kalender UTC:
// [00:00:00.000, 23:59:59.999]. Dipakai untuk cek absensi harian dan validasi
// ATTENDED pada tanggal event (granularitas hari, bukan jam).
func DayRangeUTC(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}

// TodayRangeUTC window hari ini (UTC).
func TodayRangeUTC() (time.Time, time.Time) {
	return DayRangeUTC(time.Now())
}
