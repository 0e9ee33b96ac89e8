package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

// InterfaceAnalyticsService defines the analytics service interface
type InterfaceAnalyticsService interface {
	GetDeviceUsageFrequency() ([]DeviceUsageFrequency, error)
	GetUserHabits() ([]UserHabit, error)
	GetAreaImpact() ([]AreaImpact, error)
}

// DeviceUsageFrequency 设备使用频率统计结果
type DeviceUsageFrequency struct {
	DeviceID      uint    `json:"device_id"`
	DeviceName    string  `json:"device_name"`
	DeviceType    string  `json:"device_type"`
	UsageCount    int     `json:"usage_count"`
	TotalDuration float64 `json:"total_duration"`
	AvgDuration   float64 `json:"avg_duration"`
}

// UserHabit 用户使用习惯统计结果
type UserHabit struct {
	UserID           uint           `json:"user_id"`
	UserName         string         `json:"user_name"`
	PreferredDevices []string       `json:"preferred_devices"`
	UsagePatterns    map[string]int `json:"usage_patterns"`
	PeakUsageTimes   []string       `json:"peak_usage_times"`
}

// AreaImpact 房屋面积分组统计结果
type AreaImpact struct {
	HouseAreaRange   string   `json:"house_area_range"`
	AvgDeviceCount   float64  `json:"avg_device_count"`
	PopularDevices   []string `json:"popular_devices"`
	AvgUsageDuration float64  `json:"avg_usage_duration"`
}

// 房屋面积分组，下界闭、上界开
type areaRange struct {
	min   float64
	max   float64
	label string
}

var areaRanges = []areaRange{
	{0, 50, "under 50 sqm"},
	{50, 100, "50–100 sqm"},
	{100, 150, "100–150 sqm"},
	{150, math.Inf(1), "over 150 sqm"},
}

// AnalyticsService 提供数据分析相关的服务，只读，不修改任何实体
type AnalyticsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAnalyticsService 创建一个新的数据分析服务
func NewAnalyticsService(db *gorm.DB, cfg *config.Config) InterfaceAnalyticsService {
	return &AnalyticsService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetDeviceUsageFrequency 分析设备使用频率：对每个存在使用记录的设备，
// 统计使用次数、总时长和平均时长。无使用记录的设备不出现在结果中。
func (s *AnalyticsService) GetDeviceUsageFrequency() ([]DeviceUsageFrequency, error) {
	var devices []models.Device
	if err := s.DB.Order("id").Find(&devices).Error; err != nil {
		return nil, newDataAccessError("查询设备列表", err)
	}

	var records []models.UsageRecord
	if err := s.DB.Find(&records).Error; err != nil {
		return nil, newDataAccessError("查询使用记录", err)
	}

	// 按设备分组累加，时长空值按0计，但仍计入使用次数
	type usageAgg struct {
		count int
		total float64
	}
	aggs := make(map[uint]*usageAgg)
	for i := range records {
		r := &records[i]
		agg, ok := aggs[r.DeviceID]
		if !ok {
			agg = &usageAgg{}
			aggs[r.DeviceID] = agg
		}
		agg.count++
		agg.total += r.DurationOrZero()
	}

	// 设备按ID升序遍历，保证相同输入下输出顺序稳定。
	// 读到的每一行设备都校验枚举值，无使用记录的设备也不例外
	results := make([]DeviceUsageFrequency, 0, len(aggs))
	for i := range devices {
		d := &devices[i]
		if !d.DeviceType.Valid() {
			return nil, &DataIntegrityError{Entity: "devices", Field: "device_type", Value: string(d.DeviceType)}
		}
		agg, ok := aggs[d.ID]
		if !ok {
			continue
		}
		results = append(results, DeviceUsageFrequency{
			DeviceID:      d.ID,
			DeviceName:    d.Name,
			DeviceType:    string(d.DeviceType),
			UsageCount:    agg.count,
			TotalDuration: agg.total,
			AvgDuration:   agg.total / float64(agg.count),
		})
	}

	return results, nil
}

// 2 GetUserHabits 分析用户使用习惯：对系统内每个用户统计最常用设备、
// 按小时的使用分布以及高峰使用时间。一次取全量记录后在内存中按用户分组，
// 结果与逐用户查询语义一致。
func (s *AnalyticsService) GetUserHabits() ([]UserHabit, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, newDataAccessError("查询用户列表", err)
	}

	var devices []models.Device
	if err := s.DB.Find(&devices).Error; err != nil {
		return nil, newDataAccessError("查询设备列表", err)
	}
	deviceNames := make(map[uint]string, len(devices))
	for i := range devices {
		deviceNames[devices[i].ID] = devices[i].Name
	}

	var records []models.UsageRecord
	if err := s.DB.Find(&records).Error; err != nil {
		return nil, newDataAccessError("查询使用记录", err)
	}

	// 按用户分组：设备名 -> 使用次数，小时 -> 使用次数
	nameCounts := make(map[uint]map[string]int)
	hourCounts := make(map[uint]map[int]int)
	for i := range records {
		r := &records[i]
		name, ok := deviceNames[r.DeviceID]
		if ok {
			nc := nameCounts[r.UserID]
			if nc == nil {
				nc = make(map[string]int)
				nameCounts[r.UserID] = nc
			}
			nc[name]++
		}
		hc := hourCounts[r.UserID]
		if hc == nil {
			hc = make(map[int]int)
			hourCounts[r.UserID] = hc
		}
		hc[r.StartTime.Hour()]++
	}

	results := make([]UserHabit, 0, len(users))
	for i := range users {
		u := &users[i]
		results = append(results, UserHabit{
			UserID:           u.ID,
			UserName:         u.Name,
			PreferredDevices: topDeviceNames(nameCounts[u.ID], 3),
			UsagePatterns:    hourPatterns(hourCounts[u.ID]),
			PeakUsageTimes:   peakUsageTimes(hourCounts[u.ID], 3),
		})
	}

	return results, nil
}

// topDeviceNames 取使用次数最多的前limit个设备名。
// 次数相同时按设备名升序，保证结果确定。
func topDeviceNames(counts map[string]int, limit int) []string {
	type nameCount struct {
		name  string
		count int
	}
	ranked := make([]nameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, nameCount{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	names := make([]string, 0, len(ranked))
	for _, nc := range ranked {
		names = append(names, nc.name)
	}
	return names
}

// hourPatterns 把小时分布转成 "H:00" -> 次数 的映射，只包含有记录的小时
func hourPatterns(counts map[int]int) map[string]int {
	patterns := make(map[string]int, len(counts))
	for hour, count := range counts {
		patterns[fmt.Sprintf("%d:00", hour)] = count
	}
	return patterns
}

// peakUsageTimes 取出现过的小时中数值最大的前limit个（即一天中最晚的
// 使用时段，而非次数最多的时段），格式 "H:00"
func peakUsageTimes(counts map[int]int, limit int) []string {
	hours := make([]int, 0, len(counts))
	for hour := range counts {
		hours = append(hours, hour)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(hours)))
	if len(hours) > limit {
		hours = hours[:limit]
	}
	times := make([]string, 0, len(hours))
	for _, hour := range hours {
		times = append(times, fmt.Sprintf("%d:00", hour))
	}
	return times
}

// 3 GetAreaImpact 分析房屋面积对使用行为的影响：把用户划入固定的四个
// 面积分组，对每个非空分组统计户均设备数、最受欢迎的设备类型和平均使用
// 时长。房屋面积为空的用户不参与任何分组。
func (s *AnalyticsService) GetAreaImpact() ([]AreaImpact, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, newDataAccessError("查询用户列表", err)
	}

	var devices []models.Device
	if err := s.DB.Find(&devices).Error; err != nil {
		return nil, newDataAccessError("查询设备列表", err)
	}

	var records []models.UsageRecord
	if err := s.DB.Find(&records).Error; err != nil {
		return nil, newDataAccessError("查询使用记录", err)
	}

	devicesByOwner := make(map[uint][]*models.Device)
	for i := range devices {
		d := &devices[i]
		devicesByOwner[d.OwnerID] = append(devicesByOwner[d.OwnerID], d)
	}
	recordsByUser := make(map[uint][]*models.UsageRecord)
	for i := range records {
		r := &records[i]
		recordsByUser[r.UserID] = append(recordsByUser[r.UserID], r)
	}

	results := make([]AreaImpact, 0, len(areaRanges))
	for _, ar := range areaRanges {
		cohort := make([]uint, 0)
		for i := range users {
			area := users[i].HouseArea
			if area != nil && *area >= ar.min && *area < ar.max {
				cohort = append(cohort, users[i].ID)
			}
		}
		// 空分组直接跳过，不输出零值统计
		if len(cohort) == 0 {
			continue
		}

		// 户均设备数：只统计至少拥有一台设备的用户
		ownerCount := 0
		deviceTotal := 0
		typeCounts := make(map[models.DeviceType]int)
		for _, userID := range cohort {
			owned := devicesByOwner[userID]
			if len(owned) > 0 {
				ownerCount++
				deviceTotal += len(owned)
			}
			for _, d := range owned {
				if !d.DeviceType.Valid() {
					return nil, &DataIntegrityError{Entity: "devices", Field: "device_type", Value: string(d.DeviceType)}
				}
				typeCounts[d.DeviceType]++
			}
		}
		avgDeviceCount := 0.0
		if ownerCount > 0 {
			avgDeviceCount = float64(deviceTotal) / float64(ownerCount)
		}

		// 平均使用时长：分组内用户的全部使用记录，时长空值按0计
		recordCount := 0
		durationTotal := 0.0
		for _, userID := range cohort {
			for _, r := range recordsByUser[userID] {
				recordCount++
				durationTotal += r.DurationOrZero()
			}
		}
		avgUsageDuration := 0.0
		if recordCount > 0 {
			avgUsageDuration = durationTotal / float64(recordCount)
		}

		results = append(results, AreaImpact{
			HouseAreaRange:   ar.label,
			AvgDeviceCount:   avgDeviceCount,
			PopularDevices:   topDeviceTypes(typeCounts, 3),
			AvgUsageDuration: avgUsageDuration,
		})
	}

	return results, nil
}

// topDeviceTypes 取拥有量最多的前limit个设备类型。
// 数量相同时按类型值升序，保证结果确定。
func topDeviceTypes(counts map[models.DeviceType]int, limit int) []string {
	type typeCount struct {
		deviceType models.DeviceType
		count      int
	}
	ranked := make([]typeCount, 0, len(counts))
	for dt, count := range counts {
		ranked = append(ranked, typeCount{dt, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].deviceType < ranked[j].deviceType
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	types := make([]string, 0, len(ranked))
	for _, tc := range ranked {
		types = append(types, string(tc.deviceType))
	}
	return types
}
