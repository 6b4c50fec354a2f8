package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deviceJSON = `{"appVersion":"1","deviceLocale":"en","deviceName":"d","deviceType":"web","locale":"en","osVersion":"0","screen":"1x1","timezone":"UTC"}`

var deviceFields = []string{
	"appVersion", "deviceLocale", "deviceName", "deviceType",
	"locale", "osVersion", "screen", "timezone",
}

func TestDeviceDescriptorOmitsHeaderUserAgent(t *testing.T) {
	var d DeviceDescriptor
	require.NoError(t, json.Unmarshal([]byte(deviceJSON), &d))
	assert.Nil(t, d.HeaderUserAgent)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "headerUserAgent")
	assert.JSONEq(t, deviceJSON, string(b))
}

func TestDeviceDescriptorHeaderUserAgent(t *testing.T) {
	input := strings.Replace(deviceJSON, `"deviceType":"web"`, `"deviceType":"web","headerUserAgent":"x"`, 1)

	var d DeviceDescriptor
	require.NoError(t, json.Unmarshal([]byte(input), &d))
	require.NotNil(t, d.HeaderUserAgent)
	assert.Equal(t, "x", *d.HeaderUserAgent)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"headerUserAgent":"x"`)
}

func TestDeviceDescriptorNullHeaderUserAgent(t *testing.T) {
	input := strings.Replace(deviceJSON, `"screen":"1x1"`, `"screen":"1x1","headerUserAgent":null`, 1)

	var d DeviceDescriptor
	require.NoError(t, json.Unmarshal([]byte(input), &d))
	assert.Nil(t, d.HeaderUserAgent)
}

func TestDeviceDescriptorKeyOrder(t *testing.T) {
	input := `{"timezone":"UTC","screen":"1x1","osVersion":"0","locale":"en","deviceType":"web","deviceName":"d","deviceLocale":"en","appVersion":"1"}`

	var d DeviceDescriptor
	require.NoError(t, json.Unmarshal([]byte(input), &d))
	assert.Equal(t, "UTC", d.Timezone)
	assert.Equal(t, "1", d.AppVersion)
}

func TestDeviceDescriptorRequiredFields(t *testing.T) {
	for _, name := range deviceFields {
		t.Run(name, func(t *testing.T) {
			var obj map[string]any
			require.NoError(t, json.Unmarshal([]byte(deviceJSON), &obj))
			delete(obj, name)
			b, err := json.Marshal(obj)
			require.NoError(t, err)

			var d DeviceDescriptor
			err = json.Unmarshal(b, &d)
			var fe *FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, "maxAgent", fe.Object)
			assert.Equal(t, name, fe.Field)
			assert.Equal(t, ReasonMissing, fe.Reason)
		})
	}
}

func TestDeviceDescriptorUnknownKey(t *testing.T) {
	input := strings.Replace(deviceJSON, `"locale":"en"`, `"locale":"en","userId":"42"`, 1)

	var d DeviceDescriptor
	err := json.Unmarshal([]byte(input), &d)
	var fe *FieldError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, "userId", fe.Field)
	assert.Equal(t, ReasonUnknown, fe.Reason)
}

func TestDeviceDescriptorKeysAreCaseSensitive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"upper case", strings.Replace(deviceJSON, `"appVersion"`, `"APPVERSION"`, 1), "APPVERSION"},
		{"title case", strings.Replace(deviceJSON, `"timezone"`, `"TimeZone"`, 1), "TimeZone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DeviceDescriptor
			err := json.Unmarshal([]byte(tt.input), &d)
			var fe *FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, "maxAgent", fe.Object)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, ReasonUnknown, fe.Reason)
			assert.Equal(t, DeviceDescriptor{}, d)
		})
	}
}
