package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MercTechs/AttPortal/config"
)

// InterfaceVendorGateway 定义考勤机平台网关接口
type InterfaceVendorGateway interface {
	Call(name string, params []string) (json.RawMessage, error)
	FetchAttendanceData(fromDate, toDate time.Time, employeeID string) ([]VendorAttendanceRecord, error)
	FetchDeviceList() ([]VendorDevice, error)
	FetchEmployeesByDevice(serialNumber string) ([]VendorEmployee, error)
}

// VendorGatewayService 封装对考勤机平台的出站调用。
// 平台只有一个POST入口，按请求体中的 name 字段分发命令，
// param 是 字段名/字段值 交替排列的扁平列表
type VendorGatewayService struct {
	Config *config.Config
	Client *http.Client
}

// NewVendorGatewayService 创建一个新的平台网关服务
func NewVendorGatewayService(cfg *config.Config) InterfaceVendorGateway {
	return &VendorGatewayService{
		Config: cfg,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// vendorRequest 平台调用约定的请求体
type vendorRequest struct {
	User  string   `json:"user"`
	Pass  string   `json:"pass"`
	Name  string   `json:"name"`
	Param []string `json:"param"`
}

// vendorEnvelope 平台响应信封，data 是列表的列表，首元素才是记录集
type vendorEnvelope struct {
	Result string            `json:"result"`
	Reason string            `json:"reason"`
	Data   []json.RawMessage `json:"data"`
}

// VendorAttendanceRecord 平台上报的打卡记录，字段名与平台保持一致
type VendorAttendanceRecord struct {
	AttDate      string `json:"AttDate"`
	AttTime      string `json:"AttTime"`
	EmployeeID   string `json:"EmployeeID"`
	FullName     string `json:"FullName"`
	MachineAlias string `json:"MachineAlias"`
	SerialNumber string `json:"sn"`
}

// VendorDevice 平台上报的设备信息
type VendorDevice struct {
	ID           int    `json:"ID"`
	SerialNumber string `json:"SerialNumber"`
	IP           string `json:"IP"`
	MAC          string `json:"MAC"`
	Model        string `json:"Model"`
	Firmware     string `json:"Firmware"`
	Platform     string `json:"Platform"`
	Alias        string `json:"Alias"`
	Location     string `json:"Location"`
}

// VendorEmployee 平台上报的员工信息
type VendorEmployee struct {
	SSN          string `json:"SSN"`
	FullName     string `json:"FullName"`
	Card         string `json:"Card"`
	Department   string `json:"Department"`
	SerialNumber string `json:"SerialNumber"`
}

// Call 发起一次平台命令调用，成功时返回 data 的首元素（可能为nil表示空集）
func (s *VendorGatewayService) Call(name string, params []string) (json.RawMessage, error) {
	if params == nil {
		params = []string{}
	}

	payload := vendorRequest{
		User:  s.Config.ExternalAPIUser,
		Pass:  s.Config.ExternalAPIPassword,
		Name:  name,
		Param: params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Command: name, Err: err}
	}

	resp, err := s.Client.Post(s.Config.ExternalAPIURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Command: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Command: name,
			Err:     fmt.Errorf("vendor API returned status code %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Command: name, Err: err}
	}

	var envelope vendorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	if envelope.Result != "success" {
		reason := envelope.Reason
		if reason == "" {
			reason = "Unknown error"
		}
		return nil, &VendorError{Reason: reason}
	}

	if len(envelope.Data) == 0 {
		return nil, nil
	}
	return envelope.Data[0], nil
}

// FetchAttendanceData 拉取时间窗内的打卡记录，employeeID 为空时不过滤员工
func (s *VendorGatewayService) FetchAttendanceData(fromDate, toDate time.Time, employeeID string) ([]VendorAttendanceRecord, error) {
	params := []string{
		"FromDate", fromDate.Format("2006-01-02"),
		"ToDate", toDate.Format("2006-01-02"),
	}
	if employeeID != "" {
		params = append(params, "EmployeeID", employeeID)
	}

	raw, err := s.Call("API_AttendanceList", params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []VendorAttendanceRecord{}, nil
	}

	var records []VendorAttendanceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return records, nil
}

// FetchDeviceList 拉取平台的完整设备清单（平台不分页，一次返回全集）
func (s *VendorGatewayService) FetchDeviceList() ([]VendorDevice, error) {
	raw, err := s.Call("API_DeviceList", nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []VendorDevice{}, nil
	}

	var devices []VendorDevice
	if err := json.Unmarshal(raw, &devices); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return devices, nil
}

// FetchEmployeesByDevice 拉取指定设备上登记的员工列表
func (s *VendorGatewayService) FetchEmployeesByDevice(serialNumber string) ([]VendorEmployee, error) {
	raw, err := s.Call("API_EmployeeListByDevices", []string{"SerialNumber", serialNumber})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []VendorEmployee{}, nil
	}

	var employees []VendorEmployee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return employees, nil
}
