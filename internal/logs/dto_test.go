package logs

import "testing"

func TestParseDateReturnsUTCMidnight(t *testing.T) {
	date, err := (CreateLogRequest{Date: "2025-06-01"}).ParseDate()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if date.Hour() != 0 || date.Minute() != 0 {
		t.Fatalf("date must be midnight, got %v", date)
	}
	if date.Format("2006-01-02") != "2025-06-01" {
		t.Fatalf("unexpected date %v", date)
	}
}

func TestParseDateRejectsMalformedDate(t *testing.T) {
	if _, err := (CreateLogRequest{Date: "01/06/2025"}).ParseDate(); err == nil {
		t.Fatalf("expected parse error")
	}
}
