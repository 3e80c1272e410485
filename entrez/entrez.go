// Package entrez fetches FASTA records for single accessions from the
// NCBI Entrez efetch API.
package entrez

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/DRL/acc2fasta/flags"
	"github.com/DRL/acc2fasta/info"
	"github.com/pkg/errors"
)

var defaultEndpoint = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// Fetcher is the interface the fetch loop talks to, so tests can
// substitute canned responses.
type Fetcher interface {
	Fetch(accession string) (string, error)
}

// Client fetches one accession per request from the efetch endpoint.
// Requests are blocking and carry no timeout: the remote call is an
// opaque collaborator and the user aborts before confirmation, not
// mid-fetch.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a client against url, falling back to the public
// efetch endpoint when url is empty.
func NewClient(url string) *Client {
	if url == "" {
		url = defaultEndpoint
	}
	return &Client{url: url, client: http.DefaultClient}
}

// Fetch performs one GET for accession and returns the raw FASTA text.
func (c *Client) Fetch(accession string) (string, error) {
	q := url.Values{}
	q.Set("db", info.EutilsDb)
	q.Set("id", accession)
	q.Set("rettype", "fasta")
	q.Set("retmode", "text")
	req, err := http.NewRequest("GET", c.url+"?"+q.Encode(), nil)
	if err != nil {
		return "", errors.New("can't create request to efetch API")
	}
	req.Header.Set("User-Agent", info.BinaryName+"-"+info.Version)
	if flags.Verbose {
		reqdump, err := httputil.DumpRequestOut(req, false)
		if err != nil {
			return "", errors.New("INTERNAL ERROR: failed to print request to API for verbose")
		}
		fmt.Println("REQUEST TO API")
		fmt.Println(string(reqdump))
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "can't send request to efetch API for %s", accession)
	}
	defer resp.Body.Close()
	if flags.Verbose {
		resdump, err := httputil.DumpResponse(resp, false)
		if err != nil {
			return "", errors.New("INTERNAL ERROR: failed to print response from API for verbose")
		}
		fmt.Println("RESPONSE FROM API")
		fmt.Println(string(resdump))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read efetch response for %s", accession)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("efetch API returned status %d: %s for %s", resp.StatusCode, resp.Status, accession)
	}
	return string(body), nil
}
