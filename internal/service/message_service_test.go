package service

import (
	"context"
	"errors"
	"testing"

	"carmarket/internal/database"
	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	repomocks "carmarket/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// countingTx runs fn directly and records how often it was asked to.
type countingTx struct {
	calls int
}

func (tx *countingTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func TestMessageService_ListConversations(t *testing.T) {
	user := primitive.NewObjectID()

	t.Run("attaches the recent message window to each conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c1 := models.Conversation{ID: primitive.NewObjectID()}
		c2 := models.Conversation{ID: primitive.NewObjectID()}
		m1 := []models.Message{{Text: "hi"}, {Text: "hello"}}

		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockMessageRepo := repomocks.NewMockMessageRepository(ctrl)

		mockConvoRepo.EXPECT().FindByParticipant(gomock.Any(), user).Return([]models.Conversation{c1, c2}, nil)
		mockMessageRepo.EXPECT().FindRecent(gomock.Any(), c1.ID, models.ConversationMessageWindow).Return(m1, nil)
		mockMessageRepo.EXPECT().FindRecent(gomock.Any(), c2.ID, models.ConversationMessageWindow).Return([]models.Message{}, nil)

		svc := NewMessageService(mockConvoRepo, mockMessageRepo, database.NewTransactor(nil, false))

		convos, err := svc.ListConversations(context.Background(), user)

		require.NoError(t, err)
		require.Len(t, convos, 2)
		assert.Equal(t, m1, convos[0].Messages)
		assert.NotNil(t, convos[1].Messages)
		assert.Empty(t, convos[1].Messages)
	})

	t.Run("message lookup failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dbErr := errors.New("cursor killed")
		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockMessageRepo := repomocks.NewMockMessageRepository(ctrl)

		mockConvoRepo.EXPECT().FindByParticipant(gomock.Any(), user).
			Return([]models.Conversation{{ID: primitive.NewObjectID()}}, nil)
		mockMessageRepo.EXPECT().FindRecent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		svc := NewMessageService(mockConvoRepo, mockMessageRepo, database.NewTransactor(nil, false))

		_, err := svc.ListConversations(context.Background(), user)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMessageService_Send(t *testing.T) {
	sender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()
	listing := primitive.NewObjectID()

	t.Run("starts a conversation when none is named", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		convoID := primitive.NewObjectID()
		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockMessageRepo := repomocks.NewMockMessageRepository(ctrl)
		tx := &countingTx{}

		gomock.InOrder(
			mockConvoRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, c *models.Conversation) error {
					assert.Equal(t, []primitive.ObjectID{sender, recipient}, c.Participants)
					assert.Equal(t, &listing, c.ListingID)
					assert.Nil(t, c.LastMessage)
					assert.Equal(t, map[string]int{recipient.Hex(): 1}, c.UnreadCount)
					c.ID = convoID
					return nil
				}),
			mockMessageRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, m *models.Message) error {
					assert.Equal(t, convoID, m.ConversationID)
					assert.Equal(t, models.MessageSent, m.Status)
					m.ID = primitive.NewObjectID()
					return nil
				}),
			mockConvoRepo.EXPECT().
				SetLastMessage(gomock.Any(), convoID, gomock.Any()).
				DoAndReturn(func(ctx context.Context, id primitive.ObjectID, m *models.Message) error {
					assert.Equal(t, "Is it still available?", m.Text)
					return nil
				}),
		)

		svc := NewMessageService(mockConvoRepo, mockMessageRepo, tx)

		resp, err := svc.Send(context.Background(), sender, &models.SendMessageRequest{
			ListingID:   listing.Hex(),
			RecipientID: recipient.Hex(),
			Text:        "Is it still available?",
		})

		require.NoError(t, err)
		assert.Equal(t, convoID.Hex(), resp.ConvoID)
		assert.Equal(t, sender, resp.Message.SenderID)
		assert.Equal(t, recipient, resp.Message.RecipientID)
		assert.False(t, resp.Message.ID.IsZero())
		assert.False(t, resp.Message.Timestamp.IsZero())
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("appends to an existing conversation the sender is part of", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		convo := &models.Conversation{
			ID:           primitive.NewObjectID(),
			Participants: []primitive.ObjectID{recipient, sender},
		}
		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockMessageRepo := repomocks.NewMockMessageRepository(ctrl)

		mockConvoRepo.EXPECT().FindByID(gomock.Any(), convo.ID).Return(convo, nil)
		mockMessageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockConvoRepo.EXPECT().SetLastMessage(gomock.Any(), convo.ID, gomock.Any()).Return(nil)

		svc := NewMessageService(mockConvoRepo, mockMessageRepo, database.NewTransactor(nil, false))

		resp, err := svc.Send(context.Background(), sender, &models.SendMessageRequest{
			ConversationID: convo.ID.Hex(),
			RecipientID:    recipient.Hex(),
			Text:           "Can we meet Saturday?",
		})

		require.NoError(t, err)
		assert.Equal(t, convo.ID.Hex(), resp.ConvoID)
		assert.Nil(t, resp.Message.ListingID)
	})

	t.Run("outsiders cannot post into a conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		convo := &models.Conversation{
			ID:           primitive.NewObjectID(),
			Participants: []primitive.ObjectID{recipient, primitive.NewObjectID()},
		}
		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockConvoRepo.EXPECT().FindByID(gomock.Any(), convo.ID).Return(convo, nil)

		svc := NewMessageService(mockConvoRepo, repomocks.NewMockMessageRepository(ctrl), database.NewTransactor(nil, false))

		_, err := svc.Send(context.Background(), sender, &models.SendMessageRequest{
			ConversationID: convo.ID.Hex(),
			RecipientID:    recipient.Hex(),
			Text:           "let me in",
		})

		assert.ErrorIs(t, err, apperrors.ErrConversationNotFound)
	})

	t.Run("unknown or malformed conversation id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		missing := primitive.NewObjectID()
		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockConvoRepo.EXPECT().FindByID(gomock.Any(), missing).Return(nil, apperrors.ErrConversationNotFound)

		svc := NewMessageService(mockConvoRepo, repomocks.NewMockMessageRepository(ctrl), database.NewTransactor(nil, false))

		for _, id := range []string{missing.Hex(), "nope"} {
			_, err := svc.Send(context.Background(), sender, &models.SendMessageRequest{
				ConversationID: id,
				RecipientID:    recipient.Hex(),
				Text:           "hello?",
			})
			assert.ErrorIs(t, err, apperrors.ErrConversationNotFound)
		}
	})

	t.Run("blank text is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := &countingTx{}
		svc := NewMessageService(repomocks.NewMockConversationRepository(ctrl), repomocks.NewMockMessageRepository(ctrl), tx)

		_, err := svc.Send(context.Background(), sender, &models.SendMessageRequest{
			RecipientID: recipient.Hex(),
			Text:        "   ",
		})

		assert.ErrorIs(t, err, apperrors.ErrMissingFields)
		assert.Zero(t, tx.calls)
	})

	t.Run("message insert failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dbErr := errors.New("write conflict")
		mockConvoRepo := repomocks.NewMockConversationRepository(ctrl)
		mockMessageRepo := repomocks.NewMockMessageRepository(ctrl)

		mockConvoRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockMessageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)

		svc := NewMessageService(mockConvoRepo, mockMessageRepo, database.NewTransactor(nil, false))

		resp, err := svc.Send(context.Background(), sender, &models.SendMessageRequest{
			RecipientID: recipient.Hex(),
			Text:        "hi",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, dbErr)
	})
}
