package timeutil

import "time"

const hmLayout = "15:04"

// ParseHM interpreta una hora de pared "HH:MM" (24h).
func ParseHM(hm string) (time.Time, error) {
	return time.Parse(hmLayout, hm)
}

// At combina una fecha calendario con una hora de pared "HH:MM"
// en la zona indicada.
func At(date time.Time, hm string, loc *time.Location) (time.Time, error) {
	t, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// Overlaps aplica el test de traslape semiabierto [aStart, aEnd) vs
// [bStart, bEnd): tocar bordes no cuenta como conflicto.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DayBounds retorna [00:00, +24h) de la fecha en la zona indicada.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// SameDate compara solo la fecha calendario, en la zona indicada.
func SameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DateOnly normaliza a medianoche de la fecha, en la zona indicada.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
