package entrez

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRL/acc2fasta/info"
)

func TestFetchRequestsOneAccession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("db"); got != info.EutilsDb {
			t.Errorf("db = %q, want %q", got, info.EutilsDb)
		}
		if got := q.Get("rettype"); got != "fasta" {
			t.Errorf("rettype = %q, want fasta", got)
		}
		if got := q.Get("retmode"); got != "text" {
			t.Errorf("retmode = %q, want text", got)
		}
		fmt.Fprintf(w, ">gi|1|gb|%s.1| test record\nACGT\n", q.Get("id"))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Fetch("AB123456")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := ">gi|1|gb|AB123456.1| test record\nACGT\n"
	if got != want {
		t.Errorf("Fetch = %q, want %q", got, want)
	}
}

func TestFetchNonOKStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Fetch("AB123456"); err == nil {
		t.Fatal("Fetch on HTTP 429 returned nil error")
	}
}

func TestFetchUnreachableEndpointErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewClient(url).Fetch("AB123456"); err == nil {
		t.Fatal("Fetch on closed server returned nil error")
	}
}

func TestNewClientDefaultEndpoint(t *testing.T) {
	c := NewClient("")
	if c.url != defaultEndpoint {
		t.Errorf("url = %q, want %q", c.url, defaultEndpoint)
	}
}
