package services

import (
	"errors"
	"testing"
	"time"

	"github.com/MercTechs/AttPortal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAttendanceRecord(t *testing.T) {
	record, err := MapAttendanceRecord(VendorAttendanceRecord{
		AttDate:      "2024-01-01T00:00:00",
		AttTime:      "2024-01-01T08:00:00",
		EmployeeID:   "1",
		FullName:     "John Doe",
		MachineAlias: "Main Gate",
		SerialNumber: "CJDE193360702",
	})
	require.NoError(t, err)

	assert.Equal(t, "1", record.EmployeeID)
	assert.Equal(t, "John Doe", record.EmployeeName)
	assert.Equal(t, "Main Gate", record.MachineAlias)
	assert.Equal(t, "CJDE193360702", record.MachineSerial)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), record.CheckTime)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), record.AttDate)
}

func TestMapAttendanceRecord_AcceptsMinutePrecision(t *testing.T) {
	// 平台偶尔只给到分钟精度
	record, err := MapAttendanceRecord(VendorAttendanceRecord{
		AttDate:      "2024-01-01",
		AttTime:      "2024-01-01T08:00",
		EmployeeID:   "1",
		FullName:     "John Doe",
		SerialNumber: "A",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), record.CheckTime)
}

func TestMapAttendanceRecord_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		record VendorAttendanceRecord
		field  string
	}{
		{
			name: "missing employee id",
			record: VendorAttendanceRecord{
				AttDate: "2024-01-01", AttTime: "2024-01-01T08:00:00",
				FullName: "John Doe", SerialNumber: "A",
			},
			field: "EmployeeID",
		},
		{
			name: "missing full name",
			record: VendorAttendanceRecord{
				AttDate: "2024-01-01", AttTime: "2024-01-01T08:00:00",
				EmployeeID: "1", SerialNumber: "A",
			},
			field: "FullName",
		},
		{
			name: "missing serial",
			record: VendorAttendanceRecord{
				AttDate: "2024-01-01", AttTime: "2024-01-01T08:00:00",
				EmployeeID: "1", FullName: "John Doe",
			},
			field: "sn",
		},
		{
			name: "unparseable check time",
			record: VendorAttendanceRecord{
				AttDate: "2024-01-01", AttTime: "eight in the morning",
				EmployeeID: "1", FullName: "John Doe", SerialNumber: "A",
			},
			field: "AttTime",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MapAttendanceRecord(tc.record)
			require.Error(t, err)

			var mappingErr *MappingError
			require.True(t, errors.As(err, &mappingErr))
			assert.Equal(t, tc.field, mappingErr.Field)
		})
	}
}

func TestMapDevice(t *testing.T) {
	device := MapDevice(VendorDevice{
		ID:           7,
		SerialNumber: "CJDE193360702",
		IP:           "192.168.2.50",
		MAC:          "00:17:61:10:89:33",
		Model:        "iFace702",
		Firmware:     "Ver 8.0.4",
		Alias:        "Main Gate",
		Location:     "HQ Lobby",
	})

	assert.Equal(t, "7", device.DeviceID)
	assert.Equal(t, "CJDE193360702", device.SerialNumber)
	assert.Equal(t, "Main Gate", device.Name)
	assert.Equal(t, "192.168.2.50", device.IPAddress)
	assert.True(t, device.IsActive)
	assert.Equal(t, models.DeviceSyncStatusActive, device.SyncStatus)
	assert.Nil(t, device.DeviceType)
	assert.False(t, device.LastSync.IsZero())
}

func TestMapDevice_MissingOptionalFields(t *testing.T) {
	// 可选字段缺失不报错，落为零值
	device := MapDevice(VendorDevice{ID: 1, SerialNumber: "A"})
	assert.Equal(t, "A", device.SerialNumber)
	assert.Empty(t, device.Name)
	assert.Empty(t, device.IPAddress)
	assert.Empty(t, device.Location)
}

func TestIdentityOf(t *testing.T) {
	checkTime := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	first := &models.AttendanceRecord{EmployeeID: "1", CheckTime: checkTime, MachineSerial: "A"}
	// 同一时刻的不同时区表示必须产生相同的去重键
	second := &models.AttendanceRecord{EmployeeID: "1", CheckTime: checkTime.In(time.FixedZone("ICT", 7*3600)), MachineSerial: "A"}
	other := &models.AttendanceRecord{EmployeeID: "2", CheckTime: checkTime, MachineSerial: "A"}

	assert.Equal(t, IdentityOf(first), IdentityOf(second))
	assert.NotEqual(t, IdentityOf(first), IdentityOf(other))
}
