package create_booking

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/booktable/reservation-service/internal/domain"
)

// referenceAlphabet символы кода бронирования: заглавные буквы и цифры
const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxReferenceAttempts попыток сгенерировать уникальный код
const maxReferenceAttempts = 5

// generateReference генерирует случайный код бронирования
func generateReference() (string, error) {
	buf := make([]byte, domain.BookingReferenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(buf), nil
}

// uniqueReference генерирует код, не занятый другим бронированием.
// Коллизии на 8 символах практически исключены, но проверка дешевая.
func (uc *UseCase) uniqueReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, err := generateReference()
		if err != nil {
			return "", err
		}

		exists, err := uc.bookingRepo.ReferenceExists(ctx, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
	}
	return "", fmt.Errorf("no unique reference after %d attempts", maxReferenceAttempts)
}
