package domain

import "regexp"

// emailPattern: local@domain.tld без пробелов и лишних '@'.
// Намеренно нестрогий, не соответствует RFC 5322.
// Пробелами считаются символы \s из JavaScript (\s, \v, категория Z, U+FEFF) и U+0085
var emailPattern = regexp.MustCompile(
	`^[^\s\v\p{Z}\x{85}\x{FEFF}@]+@[^\s\v\p{Z}\x{85}\x{FEFF}@]+\.[^\s\v\p{Z}\x{85}\x{FEFF}@]+$`,
)

// IsValidEmail проверяет формат email. Используется и при предварительной проверке
// запроса, и в самих операциях, чтобы сообщения об ошибках совпадали
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
