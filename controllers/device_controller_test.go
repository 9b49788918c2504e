package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MercTechs/AttPortal/models"
	"github.com/MercTechs/AttPortal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDevicesEndpoint(t *testing.T) {
	r, db, stub := newTestServer(t)
	stub.devices = []services.VendorDevice{
		{
			ID:           1,
			SerialNumber: "CJDE193360702",
			Alias:        "Main Gate",
			IP:           "192.168.2.50",
			Model:        "iFace702",
		},
	}

	w := doRequest(r, http.MethodGet, "/api/devices", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	var list struct {
		Devices        []services.VendorDevice `json:"devices"`
		NewDevices     int                     `json:"new_devices"`
		UpdatedDevices int                     `json:"updated_devices"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, 1, list.NewDevices)
	assert.Equal(t, 0, list.UpdatedDevices)
	require.Len(t, list.Devices, 1)
	assert.Equal(t, "CJDE193360702", list.Devices[0].SerialNumber)

	var stored models.AttendanceDevice
	require.NoError(t, db.Where("serial_number = ?", "CJDE193360702").First(&stored).Error)
	assert.Equal(t, "Main Gate", stored.Name)
}

func TestUpdateDeviceTypeEndpoint(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedDeviceRow(t, db, "A", nil)

	w := doRequest(r, http.MethodPatch, "/api/devices/A/type", `{"device_type":"CheckIn"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.AttendanceDevice
	require.NoError(t, db.Where("serial_number = ?", "A").First(&stored).Error)
	require.NotNil(t, stored.DeviceType)
	assert.Equal(t, models.DeviceTypeCheckIn, *stored.DeviceType)
}

func TestUpdateDeviceTypeEndpoint_RejectsUnknownType(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedDeviceRow(t, db, "A", nil)

	w := doRequest(r, http.MethodPatch, "/api/devices/A/type", `{"device_type":"Sideways"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDeviceTypeEndpoint_UnknownSerial(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doRequest(r, http.MethodPatch, "/api/devices/GHOST/type", `{"device_type":"CheckIn"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, "Device with serial number GHOST not found", resp.Message)
}

func TestUpdateAttendanceStatusEndpoint(t *testing.T) {
	r, db, stub := newTestServer(t)
	seedDeviceRow(t, db, "A", nil)
	stub.attendance = []services.VendorAttendanceRecord{
		stubPunch("1", "2024-01-01T08:00:00", "A"),
	}

	w := doRequest(r, http.MethodGet, "/api/attendance/sync?from_date=2024-01-01&to_date=2024-01-07", "")
	require.Equal(t, http.StatusOK, w.Code)

	// 未分类的设备不能重算
	w = doRequest(r, http.MethodPost, "/api/devices/A/update-attendance-status", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPatch, "/api/devices/A/type", `{"device_type":"CheckOut"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/devices/A/update-attendance-status", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	var relabel struct {
		Message        string `json:"message"`
		UpdatedRecords int64  `json:"updated_records"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &relabel))
	assert.EqualValues(t, 1, relabel.UpdatedRecords)
	assert.Equal(t, "Successfully updated 1 records for device A", relabel.Message)

	var stored models.AttendanceRecord
	require.NoError(t, db.Where("machine_serial = ?", "A").First(&stored).Error)
	assert.Equal(t, "Check Out", stored.AttendanceStatus)
}

func TestGetDeviceEmployeesEndpoint(t *testing.T) {
	r, _, stub := newTestServer(t)
	stub.employees = []services.VendorEmployee{
		{SSN: "42", FullName: "Jane Roe", Card: "0001", Department: "Ops", SerialNumber: "A"},
	}

	w := doRequest(r, http.MethodGet, "/api/devices/A/employees", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	var employees []services.VendorEmployee
	require.NoError(t, json.Unmarshal(resp.Data, &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Jane Roe", employees[0].FullName)
}
