package animl

import (
	"xml-binder/field"
	"xml-binder/model"
)

// Name is <Name>, the common name of a person, a device or a program.
type Name struct {
	Value string
}

// Manufacturer is <Manufacturer>.
type Manufacturer struct {
	Value string
}

// Author is the person or system that produced a method.
type Author struct {
	UserType UserType
	Name     *Name
}

// DeviceIdentifier is <DeviceIdentifier>, a unique identifier of a device.
type DeviceIdentifier struct {
	Value string
}

// FirmwareVersion is <FirmwareVersion>.
type FirmwareVersion struct {
	Value string
}

// SerialNumber is <SerialNumber>.
type SerialNumber struct {
	Value string
}

// Device is the instrument used to carry out a method.
type Device struct {
	Identifier   *DeviceIdentifier
	Manufacturer *Manufacturer
	Name         *Name
	Firmware     *FirmwareVersion
	SerialNumber *SerialNumber
}

// OperatingSystem is <OperatingSystem>.
type OperatingSystem struct {
	Value string
}

// Version is <Version>.
type Version struct {
	Value string
}

// Software is the program used to carry out a method.
type Software struct {
	Name            *Name
	Manufacturer    *Manufacturer
	Version         *Version
	OperatingSystem *OperatingSystem
}

func init() {
	model.MustDefine[Name](Family, "", field.Text("value", "str"))
	model.MustDefine[Manufacturer](Family, "", field.Text("value", "str"))
	model.MustDefine[Author](Family, "",
		field.Attribute("userType", "UserType"),
		field.Child("name", "Name"),
	)

	model.MustDefine[DeviceIdentifier](Family, "", field.Text("value", "str"))
	model.MustDefine[FirmwareVersion](Family, "", field.Text("value", "str"))
	model.MustDefine[SerialNumber](Family, "", field.Text("value", "str"))
	model.MustDefine[Device](Family, "",
		field.Child("identifier", "Optional[DeviceIdentifier]"),
		field.Child("manufacturer", "Optional[Manufacturer]"),
		field.Child("name", "Name"),
		field.Child("firmware", "Optional[FirmwareVersion]"),
		field.Child("serialNumber", "Optional[SerialNumber]"),
	)

	model.MustDefine[OperatingSystem](Family, "", field.Text("value", "str"))
	model.MustDefine[Version](Family, "", field.Text("value", "str"))
	model.MustDefine[Software](Family, "",
		field.Child("name", "Name"),
		field.Child("manufacturer", "Manufacturer"),
		field.Child("version", "Optional[Version]"),
		field.Child("operating_system", "Optional[OperatingSystem]"),
	)
}
