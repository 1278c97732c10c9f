package apikey

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyBytes cantidad de bytes aleatorios por llave. El string resultante tiene el doble en hex.
const KeyBytes = 32

// New genera una API key opaca: hex de bytes aleatorios de crypto/rand.
// La llave es un bearer credential permanente: se almacena en texto plano
// y solo se invalida al reemitirla.
func New() (string, error) {
	buf := make([]byte, KeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar api key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
