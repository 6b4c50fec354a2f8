package domain

// DeviceDescriptor describes the client device reported to the service.
type DeviceDescriptor struct {
	AppVersion      string  `json:"appVersion" yaml:"appVersion"`
	DeviceLocale    string  `json:"deviceLocale" yaml:"deviceLocale"`
	DeviceName      string  `json:"deviceName" yaml:"deviceName"`
	DeviceType      string  `json:"deviceType" yaml:"deviceType"`
	HeaderUserAgent *string `json:"headerUserAgent,omitempty" yaml:"headerUserAgent,omitempty"`
	Locale          string  `json:"locale" yaml:"locale"`
	OSVersion       string  `json:"osVersion" yaml:"osVersion"`
	Screen          string  `json:"screen" yaml:"screen"`
	Timezone        string  `json:"timezone" yaml:"timezone"`
}

func (d *DeviceDescriptor) UnmarshalJSON(data []byte) error {
	var out DeviceDescriptor
	err := decodeObject("maxAgent", data, false, []field{
		{name: "appVersion", dst: &out.AppVersion},
		{name: "deviceLocale", dst: &out.DeviceLocale},
		{name: "deviceName", dst: &out.DeviceName},
		{name: "deviceType", dst: &out.DeviceType},
		{name: "headerUserAgent", dst: &out.HeaderUserAgent, optional: true},
		{name: "locale", dst: &out.Locale},
		{name: "osVersion", dst: &out.OSVersion},
		{name: "screen", dst: &out.Screen},
		{name: "timezone", dst: &out.Timezone},
	})
	if err != nil {
		return err
	}
	*d = out
	return nil
}
