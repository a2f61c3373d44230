package notifier

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/niloyahmadramjan/surplusshare-server/internal/mocks/service/notifier"
)

func TestSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := mocks.NewMockNotifier(ctrl)
	email.EXPECT().Send("charity@example.com", "hello").Return(nil)

	s := NewService(map[string]Notifier{"email": email})

	err := s.Send("charity@example.com", "hello", "email")
	assert.NoError(t, err)
}

func TestSend_UnknownChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewService(map[string]Notifier{})

	err := s.Send("charity@example.com", "hello", "pigeon")
	assert.Error(t, err)
}

func TestSend_NotifierFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := mocks.NewMockNotifier(ctrl)
	email.EXPECT().Send("charity@example.com", "hello").Return(errors.New("smtp down"))

	s := NewService(map[string]Notifier{"email": email})

	err := s.Send("charity@example.com", "hello", "email")
	assert.Error(t, err)
}
