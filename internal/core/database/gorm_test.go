package database

import "testing"

func TestMySQLDSNFromParts(t *testing.T) {
	o := Opts{Host: "db.internal", Port: 3306, Username: "vitals", Password: "pw", Name: "vitalsource"}
	got := o.mysqlDSN()
	want := "vitals:pw@tcp(db.internal:3306)/vitalsource?parseTime=true&charset=utf8mb4"
	if got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}

func TestMySQLDSNPassthrough(t *testing.T) {
	o := Opts{DSN: "u:p@tcp(h:3306)/d?parseTime=true", Host: "ignored"}
	if got := o.mysqlDSN(); got != o.DSN {
		t.Fatalf("explicit dsn rewritten: %q", got)
	}
}

func TestPostgresDSNFromParts(t *testing.T) {
	o := Opts{Host: "pg", Port: 5432, Username: "u", Password: "p", Name: "vitalsource"}
	want := "host=pg port=5432 user=u password=p dbname=vitalsource sslmode=disable"
	if got := o.postgresDSN(); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}

func TestUnsupportedDriver(t *testing.T) {
	if _, err := NewGorm(Opts{Driver: "sqlite"}); err != ErrUnsupportedDriver {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}
