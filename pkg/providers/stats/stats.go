package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ProviderStats 单个提供商/模型的调用统计
type ProviderStats struct {
	ProviderName       string `json:"provider_name"`
	ModelName          string `json:"model_name"`
	TotalRequests      int64  `json:"total_requests"`
	SuccessfulRequests int64  `json:"successful_requests"`
	FailedRequests     int64  `json:"failed_requests"`

	// 流式输出
	TotalDeltas     int64 `json:"total_deltas"`
	TotalOutputSize int64 `json:"total_output_size"` // 字节数

	// 性能指标
	AverageLatency time.Duration `json:"average_latency"`
	MinLatency     time.Duration `json:"min_latency"`
	MaxLatency     time.Duration `json:"max_latency"`
	TotalLatency   time.Duration `json:"total_latency"`

	// 按错误分类统计
	ErrorTypes map[string]int64 `json:"error_types"`

	FirstRequestTime time.Time `json:"first_request_time"`
	LastRequestTime  time.Time `json:"last_request_time"`
}

// SuccessRate 成功率（百分比）
func (ps *ProviderStats) SuccessRate() float64 {
	if ps.TotalRequests == 0 {
		return 0
	}
	return float64(ps.SuccessfulRequests) / float64(ps.TotalRequests) * 100
}

func (ps *ProviderStats) clone() *ProviderStats {
	c := *ps
	c.ErrorTypes = make(map[string]int64, len(ps.ErrorTypes))
	for k, v := range ps.ErrorTypes {
		c.ErrorTypes[k] = v
	}
	return &c
}

// RequestResult 单次请求结果
type RequestResult struct {
	Success    bool
	Latency    time.Duration
	Deltas     int
	OutputSize int
	ErrorType  string
}

// Manager 统计管理器，可选地持久化到 JSON 文件
type Manager struct {
	stats  map[string]*ProviderStats // key: provider:model
	dbPath string
	logger *zap.Logger
	mu     sync.RWMutex
	saveMu sync.Mutex // 串行化 Save
}

// NewManager 创建统计管理器，dbPath 为空时只在内存中统计
func NewManager(dbPath string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		stats:  make(map[string]*ProviderStats),
		dbPath: dbPath,
		logger: logger,
	}
}

func key(provider, model string) string {
	return fmt.Sprintf("%s:%s", provider, model)
}

// Record 记录请求结果
func (m *Manager) Record(provider, model string, result RequestResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(provider, model)
	stats, ok := m.stats[k]
	if !ok {
		stats = &ProviderStats{
			ProviderName: provider,
			ModelName:    model,
			ErrorTypes:   make(map[string]int64),
		}
		m.stats[k] = stats
	}

	now := time.Now()
	if stats.FirstRequestTime.IsZero() {
		stats.FirstRequestTime = now
	}
	stats.LastRequestTime = now

	stats.TotalRequests++
	if result.Success {
		stats.SuccessfulRequests++
	} else {
		stats.FailedRequests++
		if result.ErrorType != "" {
			stats.ErrorTypes[result.ErrorType]++
		}
	}

	stats.TotalDeltas += int64(result.Deltas)
	stats.TotalOutputSize += int64(result.OutputSize)

	// 延迟统计
	stats.TotalLatency += result.Latency
	if stats.TotalRequests == 1 || result.Latency < stats.MinLatency {
		stats.MinLatency = result.Latency
	}
	if result.Latency > stats.MaxLatency {
		stats.MaxLatency = result.Latency
	}
	stats.AverageLatency = stats.TotalLatency / time.Duration(stats.TotalRequests)
}

// Get 获取指定提供商/模型统计的副本
func (m *Manager) Get(provider, model string) (*ProviderStats, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats, ok := m.stats[key(provider, model)]
	if !ok {
		return nil, false
	}
	return stats.clone(), true
}

// All 返回全部统计的副本，按键排序
func (m *Manager) All() []*ProviderStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.stats))
	for k := range m.stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*ProviderStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.stats[k].clone())
	}
	return out
}

// Save 保存统计数据，先写同目录下的临时文件再重命名
func (m *Manager) Save() error {
	if m.dbPath == "" {
		return nil
	}

	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	dir := filepath.Dir(m.dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	m.mu.RLock()
	data, err := json.MarshalIndent(m.stats, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(m.dbPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create stats temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename stats file: %w", err)
	}

	m.logger.Debug("统计数据已保存", zap.String("path", m.dbPath))
	return nil
}

// Load 从文件加载统计数据，文件不存在时从零开始
func (m *Manager) Load() error {
	if m.dbPath == "" {
		return nil
	}

	data, err := os.ReadFile(m.dbPath)
	if os.IsNotExist(err) {
		m.logger.Debug("统计文件不存在，从零开始", zap.String("path", m.dbPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read stats file: %w", err)
	}

	var loaded map[string]*ProviderStats
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats data: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k, stats := range loaded {
		if stats == nil {
			continue
		}
		if stats.ErrorTypes == nil {
			stats.ErrorTypes = make(map[string]int64)
		}
		m.stats[k] = stats
	}
	return nil
}
