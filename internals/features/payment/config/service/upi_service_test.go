package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUPIString(t *testing.T) {
	link := BuildUPIString("sanggarku@upi", "Sanggarku Academy")

	assert.Equal(t, "upi://pay?pa=sanggarku%40upi&pn=Sanggarku+Academy&cu=INR", link)
}

func TestBuildUPIStringEscapesReservedChars(t *testing.T) {
	link := BuildUPIString("a&b@upi", "Nama / Studio")

	assert.NotContains(t, link, "pa=a&b")
	assert.Contains(t, link, "pa=a%26b%40upi")
	assert.Contains(t, link, "cu=INR")
}
