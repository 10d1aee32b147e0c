package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Update(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	old := "https://img/old.png"
	name := "Shop"

	t.Run("keeps image without upload", func(t *testing.T) {
		p := ReconstructProfile(Snapshot{UserID: "u1", ProfileImageURL: &old})
		changed := p.Update(Fields{DisplayName: &name}, nil, now)

		assert.Equal(t, []string{"display_name"}, changed)
		assert.Equal(t, &old, p.ProfileImageURL())
		assert.Equal(t, "Shop", *p.DisplayName())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("upload replaces image", func(t *testing.T) {
		p := ReconstructProfile(Snapshot{UserID: "u1", ProfileImageURL: &old, DisplayName: &name})
		fresh := "https://img/new.png"
		changed := p.Update(Fields{}, &fresh, now)

		assert.Equal(t, []string{"profile_image_url"}, changed)
		assert.Equal(t, "https://img/new.png", *p.ProfileImageURL())
		assert.Equal(t, "Shop", *p.DisplayName())
	})

	t.Run("new profile", func(t *testing.T) {
		p := NewProfile("u1", now)
		assert.Nil(t, p.ProfileImageURL())
		assert.Equal(t, now, p.CreatedAt())
	})
}
