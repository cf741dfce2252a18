package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "msgboard/internal/errors"
	"msgboard/internal/model"
	"msgboard/internal/repository"
)

func TestTagService_CreateTag(t *testing.T) {
	tags := new(MockTagRepository)
	tags.On("Create", mock.Anything, mock.MatchedBy(func(tag *model.Tag) bool { return tag.Name == "go" })).Return(nil).Once()
	tags.On("Create", mock.Anything, mock.MatchedBy(func(tag *model.Tag) bool { return tag.Name == "dup" })).Return(gorm.ErrDuplicatedKey)

	svc := NewTagService(tags, new(MockMessageRepository))

	tag, err := svc.CreateTag(context.Background(), "  go ")
	assert.NoError(t, err)
	assert.Equal(t, "go", tag.Name)

	_, err = svc.CreateTag(context.Background(), "dup")
	assert.ErrorIs(t, err, apperrors.ErrTagNameTaken)

	_, err = svc.CreateTag(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestTagService_DeleteTag(t *testing.T) {
	tags := new(MockTagRepository)
	tags.On("Delete", mock.Anything, uint(1)).Return(nil)
	tags.On("Delete", mock.Anything, uint(2)).Return(gorm.ErrRecordNotFound)

	svc := NewTagService(tags, new(MockMessageRepository))

	assert.NoError(t, svc.DeleteTag(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteTag(context.Background(), 2), apperrors.ErrTagNotFound)
}

func TestTagService_AttachTag(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTagRepository, *MockMessageRepository)
		expectedError error
	}{
		{
			name: "existing tag",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 1}, nil)
				tg.On("FindByName", mock.Anything, "go").Return(&model.Tag{ID: 9, Name: "go"}, nil)
				tg.On("Attach", mock.Anything, uint(5), uint(9)).Return(nil)
			},
		},
		{
			name: "new tag is created",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 1}, nil)
				tg.On("FindByName", mock.Anything, "go").Return(nil, gorm.ErrRecordNotFound)
				tg.On("Create", mock.Anything, mock.AnythingOfType("*model.Tag")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Tag).ID = 9
				}).Return(nil)
				tg.On("Attach", mock.Anything, uint(5), uint(9)).Return(nil)
			},
		},
		{
			name: "message belongs to someone else",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 2}, nil)
			},
			expectedError: apperrors.ErrMessageNotFound,
		},
		{
			name: "missing message",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMessageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := new(MockTagRepository)
			messages := new(MockMessageRepository)
			tt.setupMock(tags, messages)

			svc := NewTagService(tags, messages)
			tag, err := svc.AttachTag(context.Background(), 1, 5, "go")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tag)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(9), tag.ID)
			}
			tags.AssertExpectations(t)
			messages.AssertExpectations(t)
		})
	}
}

func TestTagService_ListTags(t *testing.T) {
	tags := new(MockTagRepository)
	tags.On("ListWithCounts", mock.Anything).Return([]repository.TagSummary{
		{Tag: model.Tag{ID: 1, Name: "a"}, MessageCount: 3},
		{Tag: model.Tag{ID: 2, Name: "b"}},
	}, nil)

	svc := NewTagService(tags, new(MockMessageRepository))
	list, err := svc.ListTags(context.Background())

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].MessageCount)
	assert.Equal(t, "b", list[1].Name)
}

func TestTagService_DetachTag(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTagRepository, *MockMessageRepository)
		expectedError error
	}{
		{
			name: "attached tag",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 1}, nil)
				tg.On("FindByID", mock.Anything, uint(9)).Return(&model.Tag{ID: 9, Name: "go"}, nil)
				tg.On("Detach", mock.Anything, uint(5), uint(9)).Return(nil)
			},
		},
		{
			name: "unknown tag",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 1}, nil)
				tg.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTagNotFound,
		},
		{
			name: "tag not on the message",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 1}, nil)
				tg.On("FindByID", mock.Anything, uint(9)).Return(&model.Tag{ID: 9, Name: "go"}, nil)
				tg.On("Detach", mock.Anything, uint(5), uint(9)).Return(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTagNotFound,
		},
		{
			name: "message belongs to someone else",
			setupMock: func(tg *MockTagRepository, m *MockMessageRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Message{ID: 5, UserID: 2}, nil)
			},
			expectedError: apperrors.ErrMessageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := new(MockTagRepository)
			messages := new(MockMessageRepository)
			tt.setupMock(tags, messages)

			svc := NewTagService(tags, messages)
			err := svc.DetachTag(context.Background(), 1, 5, 9)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			tags.AssertExpectations(t)
			messages.AssertExpectations(t)
		})
	}
}
