package mongo

import (
	"errors"
	"testing"

	"manisera/affirmation-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapWriteError(t *testing.T) {
	t.Run("duplicate key becomes the update sentinel", func(t *testing.T) {
		dup := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
		assert.ErrorIs(t, mapWriteError(dup), repository.ErrUpdateFailed)
	})

	t.Run("other write errors pass through unchanged", func(t *testing.T) {
		err := errors.New("server selection timeout")
		assert.Equal(t, err, mapWriteError(err))
	})
}
