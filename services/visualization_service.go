package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

// InterfaceVisualizationService defines the visualization service interface
type InterfaceVisualizationService interface {
	GetDeviceUsageReport() (*ChartReport, error)
	GetSecurityEventsReport() (*ChartReport, error)
	GetFeedbackReport() (*ChartReport, error)
}

// ChartDataset 单条图表数据序列及其显示设置
type ChartDataset struct {
	Label           string      `json:"label"`
	Data            []float64   `json:"data"`
	Labels          []string    `json:"labels,omitempty"` // 序列自带的逐点标签（月度序列使用）
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	BorderColor     string      `json:"borderColor,omitempty"`
	Type            string      `json:"type,omitempty"` // 覆盖图表类型，如折线
	YAxisID         string      `json:"yAxisID,omitempty"`
}

// ChartReport 通用图表数据结构，任何图表前端都可直接消费
type ChartReport struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// 按年月分桶的键
type yearMonth struct {
	year  int
	month int
}

func (ym yearMonth) label() string {
	return fmt.Sprintf("%d-%d", ym.year, ym.month)
}

// sortedYearMonths 按时间先后排序分桶键
func sortedYearMonths(buckets map[yearMonth]int) []yearMonth {
	keys := make([]yearMonth, 0, len(buckets))
	for ym := range buckets {
		keys = append(keys, ym)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	return keys
}

// VisualizationService 提供可视化数据相关的服务，只读
type VisualizationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisualizationService 创建一个新的可视化数据服务
func NewVisualizationService(db *gorm.DB, cfg *config.Config) InterfaceVisualizationService {
	return &VisualizationService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetDeviceUsageReport 按设备类型统计使用次数和使用时长，
// 标签只包含存在使用记录的类型，按枚举声明顺序排列
func (s *VisualizationService) GetDeviceUsageReport() (*ChartReport, error) {
	var devices []models.Device
	if err := s.DB.Find(&devices).Error; err != nil {
		return nil, newDataAccessError("查询设备列表", err)
	}

	deviceTypes := make(map[uint]models.DeviceType, len(devices))
	for i := range devices {
		d := &devices[i]
		if !d.DeviceType.Valid() {
			return nil, &DataIntegrityError{Entity: "devices", Field: "device_type", Value: string(d.DeviceType)}
		}
		deviceTypes[d.ID] = d.DeviceType
	}

	var records []models.UsageRecord
	if err := s.DB.Find(&records).Error; err != nil {
		return nil, newDataAccessError("查询使用记录", err)
	}

	typeCounts := make(map[models.DeviceType]int)
	typeDurations := make(map[models.DeviceType]float64)
	for i := range records {
		r := &records[i]
		dt, ok := deviceTypes[r.DeviceID]
		if !ok {
			continue
		}
		typeCounts[dt]++
		typeDurations[dt] += r.DurationOrZero()
	}

	labels := make([]string, 0, len(typeCounts))
	counts := make([]float64, 0, len(typeCounts))
	durations := make([]float64, 0, len(typeCounts))
	for _, dt := range models.AllDeviceTypes {
		if _, ok := typeCounts[dt]; !ok {
			continue
		}
		labels = append(labels, string(dt))
		counts = append(counts, float64(typeCounts[dt]))
		durations = append(durations, typeDurations[dt])
	}

	return &ChartReport{
		Labels: labels,
		Datasets: []ChartDataset{
			{
				Label:           "使用次数",
				Data:            counts,
				BackgroundColor: "rgba(54, 162, 235, 0.5)",
			},
			{
				Label:           "使用时长(分钟)",
				Data:            durations,
				BackgroundColor: "rgba(255, 99, 132, 0.5)",
			},
		},
	}, nil
}

// 2 GetSecurityEventsReport 按事件类型统计数量，并给出最近180天的
// 月度事件趋势。评估时间取生成报表时的系统时间。
func (s *VisualizationService) GetSecurityEventsReport() (*ChartReport, error) {
	var events []models.SecurityEvent
	if err := s.DB.Find(&events).Error; err != nil {
		return nil, newDataAccessError("查询安防事件", err)
	}

	cutoff := time.Now().AddDate(0, 0, -180)
	typeCounts := make(map[models.SecurityEventType]int)
	monthly := make(map[yearMonth]int)
	for i := range events {
		e := &events[i]
		if !e.EventType.Valid() {
			return nil, &DataIntegrityError{Entity: "security_events", Field: "event_type", Value: string(e.EventType)}
		}
		typeCounts[e.EventType]++
		if !e.OccurredAt.Before(cutoff) {
			monthly[yearMonth{e.OccurredAt.Year(), int(e.OccurredAt.Month())}]++
		}
	}

	typeLabels := make([]string, 0, len(typeCounts))
	typeData := make([]float64, 0, len(typeCounts))
	for _, et := range models.AllSecurityEventTypes {
		if _, ok := typeCounts[et]; !ok {
			continue
		}
		typeLabels = append(typeLabels, string(et))
		typeData = append(typeData, float64(typeCounts[et]))
	}

	months := sortedYearMonths(monthly)
	monthLabels := make([]string, 0, len(months))
	monthData := make([]float64, 0, len(months))
	for _, ym := range months {
		monthLabels = append(monthLabels, ym.label())
		monthData = append(monthData, float64(monthly[ym]))
	}

	return &ChartReport{
		Labels: typeLabels,
		Datasets: []ChartDataset{
			{
				Label: "事件类型分布",
				Data:  typeData,
				BackgroundColor: []string{
					"rgba(255, 99, 132, 0.5)",
					"rgba(54, 162, 235, 0.5)",
					"rgba(255, 206, 86, 0.5)",
					"rgba(75, 192, 192, 0.5)",
					"rgba(153, 102, 255, 0.5)",
					"rgba(255, 159, 64, 0.5)",
				},
			},
			{
				Label:           "月度事件趋势",
				Data:            monthData,
				Labels:          monthLabels,
				BorderColor:     "rgba(54, 162, 235, 1)",
				BackgroundColor: "rgba(54, 162, 235, 0.1)",
				Type:            "line",
			},
		},
	}, nil
}

// 3 GetFeedbackReport 按评分统计反馈数量，并给出全量时间范围内的
// 月度反馈数量与月度平均评分，两条月度序列共用同一组年月分桶
func (s *VisualizationService) GetFeedbackReport() (*ChartReport, error) {
	var feedbacks []models.Feedback
	if err := s.DB.Find(&feedbacks).Error; err != nil {
		return nil, newDataAccessError("查询用户反馈", err)
	}

	ratingCounts := make(map[int]int)
	monthlyCounts := make(map[yearMonth]int)
	monthlyRatingSums := make(map[yearMonth]int)
	for i := range feedbacks {
		f := &feedbacks[i]
		ratingCounts[f.Rating]++
		ym := yearMonth{f.CreatedAt.Year(), int(f.CreatedAt.Month())}
		monthlyCounts[ym]++
		monthlyRatingSums[ym] += f.Rating
	}

	ratings := make([]int, 0, len(ratingCounts))
	for rating := range ratingCounts {
		ratings = append(ratings, rating)
	}
	sort.Ints(ratings)

	ratingLabels := make([]string, 0, len(ratings))
	ratingData := make([]float64, 0, len(ratings))
	for _, rating := range ratings {
		ratingLabels = append(ratingLabels, fmt.Sprintf("%d星", rating))
		ratingData = append(ratingData, float64(ratingCounts[rating]))
	}

	months := sortedYearMonths(monthlyCounts)
	monthLabels := make([]string, 0, len(months))
	countData := make([]float64, 0, len(months))
	avgRatingData := make([]float64, 0, len(months))
	for _, ym := range months {
		monthLabels = append(monthLabels, ym.label())
		count := monthlyCounts[ym]
		countData = append(countData, float64(count))
		avgRatingData = append(avgRatingData, float64(monthlyRatingSums[ym])/float64(count))
	}

	return &ChartReport{
		Labels: ratingLabels,
		Datasets: []ChartDataset{
			{
				Label: "评分分布",
				Data:  ratingData,
				BackgroundColor: []string{
					"rgba(255, 99, 132, 0.5)",
					"rgba(255, 159, 64, 0.5)",
					"rgba(255, 206, 86, 0.5)",
					"rgba(75, 192, 192, 0.5)",
					"rgba(54, 162, 235, 0.5)",
				},
			},
			{
				Label:           "月度反馈数量",
				Data:            countData,
				Labels:          monthLabels,
				BorderColor:     "rgba(75, 192, 192, 1)",
				BackgroundColor: "rgba(75, 192, 192, 0.1)",
				Type:            "line",
			},
			{
				Label:           "月度平均评分",
				Data:            avgRatingData,
				Labels:          monthLabels,
				BorderColor:     "rgba(153, 102, 255, 1)",
				BackgroundColor: "rgba(153, 102, 255, 0.1)",
				Type:            "line",
				YAxisID:         "rating",
			},
		},
	}, nil
}
