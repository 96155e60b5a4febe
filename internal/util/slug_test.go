package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Banking", "banking"},
		{"spaces to hyphens", "How to file a complaint", "how-to-file-a-complaint"},
		{"turkish letters fold", "Şikayet Çözüm Rehberi", "sikayet-cozum-rehberi"},
		{"dotless i", "Kullanıcı Sözleşmesi", "kullanici-sozlesmesi"},
		{"capital dotted i", "İade İşlemleri", "iade-islemleri"},
		{"punctuation collapses", "FAQ -- General / Billing", "faq-general-billing"},
		{"leading and trailing noise", "  --Hello World--  ", "hello-world"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"empty", "", ""},
		{"only punctuation", "!?&", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
