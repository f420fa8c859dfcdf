package model_test

import (
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestChannel_String(t *testing.T) {
	assert.Equal(t, "Email", model.ChannelEmail.String())
	assert.Equal(t, "SMS", model.ChannelSMS.String())
	assert.Equal(t, "Channel 7", model.Channel(7).String())
	assert.False(t, model.Channel(7).Known())
}

func TestTemplateStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", model.TemplateStatusPending.String())
	assert.Equal(t, "Approved", model.TemplateStatusApproved.String())
	assert.Equal(t, "Rejected", model.TemplateStatusRejected.String())
	assert.Equal(t, "Status 9", model.TemplateStatus(9).String())
}

func TestParseRole(t *testing.T) {
	role, err := model.ParseRole(" manager ")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleManager, role)

	_, err = model.ParseRole("admin")
	assert.ErrorIs(t, err, model.ErrUnknownRole)
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 1, model.Page[model.Template]{Total: 0, PageSize: 10}.TotalPages())
	assert.Equal(t, 3, model.Page[model.Template]{Total: 21, PageSize: 10}.TotalPages())
	assert.Equal(t, 1, model.Page[model.Template]{Total: 5}.TotalPages())
}
