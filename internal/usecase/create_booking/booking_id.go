package create_booking

import (
	"strconv"
	"time"

	"github.com/TahaKotwal12/247-gym/internal/domain"
)

const (
	bookingIDSuffixLength = 9
	base36Alphabet        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// newBookingID формирует ID вида booking-<unix ms>-<9 символов base36>
func newBookingID(now time.Time, rnd RandomSource) string {
	suffix := make([]byte, bookingIDSuffixLength)
	for i := range suffix {
		suffix[i] = base36Alphabet[rnd.IntN(len(base36Alphabet))]
	}

	return domain.BookingIDPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}
