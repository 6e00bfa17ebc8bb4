package utils

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	invoiceMu   sync.Mutex
	lastInvoice int64
)

// NextInvoiceNumber issues an identifier of the form INV-<base36 millisecond
// clock, upper-cased>. The issuer is serialized behind a mutex and bumps the
// encoded value past the previously issued one, so numbers are strictly
// increasing within a process even when two requests land in the same
// millisecond.
func NextInvoiceNumber() string {
	invoiceMu.Lock()
	defer invoiceMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= lastInvoice {
		ms = lastInvoice + 1
	}
	lastInvoice = ms

	return "INV-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}
