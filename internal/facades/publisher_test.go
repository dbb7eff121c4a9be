package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	p := NewContactEventPublisher(writer)

	msg := models.ContactMessage{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Message: "Hi"}

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, msg.ID.String(), string(msgs[0].Key))

			var got models.ContactMessage
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, msg.Name, got.Name)
			return nil
		})

	assert.NoError(t, p.PublishContactMessage(context.Background(), msg))
}

func TestContactEventPublisher_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	p := NewContactEventPublisher(writer)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
	assert.Error(t, p.PublishContactMessage(context.Background(), models.ContactMessage{ID: uuid.New()}))

	writer.EXPECT().Close().Return(nil)
	assert.NoError(t, p.Close())
}
