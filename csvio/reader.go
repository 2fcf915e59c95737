package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ledgerflow/txnengine/common/amount"
	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/streaming"
)

// Reader implements streaming.EventSource over a CSV input: a header row
// followed by "type,client,tx,amount" rows, with amount blank for dispute,
// resolve and chargeback rows. Fields are trimmed and the type column is
// matched case-insensitively.
type Reader struct {
	csv *csv.Reader
}

// NewReader wraps r, a CSV byte stream starting with the header row.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// FromFilePath opens path, returning a Reader that closes the file once its
// Events channel is exhausted.
func FromFilePath(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{csv: newClosingCSVReader(f)}, nil
}

func newClosingCSVReader(f *os.File) *csv.Reader {
	cr := csv.NewReader(&closeOnEOFReader{f: f})
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// closeOnEOFReader closes the underlying file the first time a read
// returns io.EOF, so FromFilePath callers don't have to track the *os.File
// themselves.
type closeOnEOFReader struct {
	f      *os.File
	closed bool
}

func (c *closeOnEOFReader) Read(p []byte) (int, error) {
	n, err := c.f.Read(p)
	if err == io.EOF && !c.closed {
		c.closed = true
		_ = c.f.Close()
	}
	return n, err
}

// Events implements streaming.EventSource. Rows are read and parsed one at
// a time as the channel is drained, never all at once.
func (r *Reader) Events() <-chan streaming.Envelope {
	out := make(chan streaming.Envelope)
	go func() {
		defer close(out)

		if _, err := r.csv.Read(); err != nil {
			if err == io.EOF {
				return
			}
			out <- streaming.Envelope{Err: &Error{Err: ErrCsvMalformed, Detail: err.Error()}}
			return
		}

		for {
			record, err := r.csv.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- streaming.Envelope{Err: &Error{Err: ErrCsvMalformed, Detail: err.Error()}}
				continue
			}
			ev, perr := parseRecord(record)
			if perr != nil {
				out <- streaming.Envelope{Err: perr}
				continue
			}
			out <- streaming.Envelope{Event: ev}
		}
	}()
	return out
}

func parseRecord(row []string) (domain.Event, error) {
	if len(row) < 3 {
		return domain.Event{}, &Error{Err: ErrCsvMalformed, Detail: strings.Join(row, ",")}
	}

	typ := strings.ToLower(strings.TrimSpace(row[0]))
	clientStr := strings.TrimSpace(row[1])
	txStr := strings.TrimSpace(row[2])
	var amountStr string
	if len(row) > 3 {
		amountStr = strings.TrimSpace(row[3])
	}

	clientVal, err := strconv.ParseUint(clientStr, 10, 16)
	if err != nil {
		return domain.Event{}, &Error{Err: ErrCsvMalformed, Detail: "invalid client id: " + clientStr}
	}
	txVal, err := strconv.ParseUint(txStr, 10, 32)
	if err != nil {
		return domain.Event{}, &Error{Err: ErrCsvMalformed, Detail: "invalid transaction id: " + txStr}
	}

	client := domain.ClientID(clientVal)
	tx := domain.TxID(txVal)

	switch typ {
	case "deposit", "withdrawal":
		if amountStr == "" {
			return domain.Event{}, &Error{Err: ErrMissingField, Detail: "amount"}
		}
		amt, perr := amount.Parse(amountStr)
		if perr != nil {
			return domain.Event{}, &Error{Err: ErrInvalidAmount, Detail: amountStr}
		}
		kind := domain.KindDeposit
		if typ == "withdrawal" {
			kind = domain.KindWithdrawal
		}
		return domain.Event{Kind: kind, Client: client, Tx: tx, Amount: amt}, nil
	case "dispute":
		return domain.Event{Kind: domain.KindDispute, Client: client, Tx: tx}, nil
	case "resolve":
		return domain.Event{Kind: domain.KindResolve, Client: client, Tx: tx}, nil
	case "chargeback":
		return domain.Event{Kind: domain.KindChargeback, Client: client, Tx: tx}, nil
	default:
		return domain.Event{}, &Error{Err: ErrInvalidTransactionType, Detail: row[0]}
	}
}
