package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// MQTT主题
const (
	TopicSecurityAlert = "smarthome/security/alert"
	TopicDeviceStatus  = "smarthome/device/status"
)

// InterfaceMQTTService defines the MQTT notification service interface
type InterfaceMQTTService interface {
	Connect() error
	Disconnect()
	PublishSecurityAlert(event *models.SecurityEvent) error
	PublishDeviceStatus(device *models.Device) error
}

// MQTTService 向MQTT代理推送安防报警和设备状态通知
type MQTTService struct {
	Client mqtt.Client
	Config *config.Config
}

// NewMQTTService 创建一个新的MQTT通知服务
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	service := &MQTTService{
		Config: cfg,
	}
	service.setupMQTTClient()
	return service
}

// setupMQTTClient 设置MQTT客户端
func (s *MQTTService) setupMQTTClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s", s.Config.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)

	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] 连接断开: %v", err)
	})
	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		log.Println("[MQTT] 正在尝试重连...")
	})

	s.Client = mqtt.NewClient(opts)
}

// Connect 连接到MQTT服务器
func (s *MQTTService) Connect() error {
	log.Printf("[MQTT] 正在连接到 %s...", s.Config.MQTTBrokerURL)

	token := s.Client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("连接MQTT服务器超时")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("连接MQTT服务器失败: %w", err)
	}

	log.Println("[MQTT] 连接成功")
	return nil
}

// Disconnect 断开MQTT连接
func (s *MQTTService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// PublishSecurityAlert 推送安防报警通知，QoS 1
func (s *MQTTService) PublishSecurityAlert(event *models.SecurityEvent) error {
	payload, err := json.Marshal(map[string]interface{}{
		"event_id":    event.ID,
		"user_id":     event.UserID,
		"event_type":  event.EventType,
		"description": event.Description,
		"location":    event.Location,
		"occurred_at": event.OccurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.publish(TopicSecurityAlert, payload)
}

// PublishDeviceStatus 推送设备状态变化通知，QoS 1
func (s *MQTTService) PublishDeviceStatus(device *models.Device) error {
	payload, err := json.Marshal(map[string]interface{}{
		"device_id":   device.ID,
		"device_type": device.DeviceType,
		"status":      device.Status,
		"owner_id":    device.OwnerID,
	})
	if err != nil {
		return err
	}
	return s.publish(TopicDeviceStatus, payload)
}

func (s *MQTTService) publish(topic string, payload []byte) error {
	if !s.Client.IsConnected() {
		return fmt.Errorf("MQTT客户端未连接")
	}
	token := s.Client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("发布消息超时: topic=%s", topic)
	}
	if err := token.Error(); err != nil {
		log.Printf("[MQTT] 发布消息失败: topic=%s, err=%v", topic, err)
		return err
	}
	return nil
}
