package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare id returned unchanged",
			raw:  "dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch url",
			raw:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch url with extra params",
			raw:  "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42s",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short url",
			raw:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed url",
			raw:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "shorts url",
			raw:  "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "unrecognized string",
			raw:  "https://vimeo.com/123456789",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "ten character token is not an id",
			raw:  "dQw4w9WgXc",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YouTubeID(tt.raw))
		})
	}
}

func TestGoogleMapEmbedURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		shopName string
		address  string
		want     string
	}{
		{
			name: "coordinates win with zoom 17",
			raw:  "https://www.google.com/maps/place/Kimuraya/@35.6812,139.7671,17z/data=xyz",
			want: "https://maps.google.com/maps?q=35.6812,139.7671&z=17&output=embed",
		},
		{
			name: "negative coordinates",
			raw:  "https://www.google.com/maps/@-33.8688,151.2093,15z",
			want: "https://maps.google.com/maps?q=-33.8688,151.2093&z=17&output=embed",
		},
		{
			name: "place name is decoded and re-encoded",
			raw:  "https://www.google.com/maps/place/%E6%9C%A8%E6%9D%91%E5%B1%8B+%E6%9C%AC%E5%BA%97/data=xyz",
			want: "https://maps.google.com/maps?q=%E6%9C%A8%E6%9D%91%E5%B1%8B+%E6%9C%AC%E5%BA%97&output=embed",
		},
		{
			name:     "short link falls back to shop name and address",
			raw:      "https://maps.app.goo.gl/AbCdEf",
			shopName: "木村屋 本店",
			address:  "東京都中央区銀座4-5-7",
			want:     "https://maps.google.com/maps?q=" + "%E6%9C%A8%E6%9D%91%E5%B1%8B+%E6%9C%AC%E5%BA%97+%E6%9D%B1%E4%BA%AC%E9%83%BD%E4%B8%AD%E5%A4%AE%E5%8C%BA%E9%8A%80%E5%BA%A74-5-7" + "&output=embed",
		},
		{
			name: "short link without fallback data",
			raw:  "https://goo.gl/maps/AbCdEf",
			want: "",
		},
		{
			name: "plain text becomes the query",
			raw:  "Ginza Tokyo",
			want: "https://maps.google.com/maps?q=Ginza+Tokyo&output=embed",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoogleMapEmbedURL(tt.raw, tt.shopName, tt.address))
		})
	}
}
