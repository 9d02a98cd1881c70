package service

import (
	"sync"

	"hangar-service/internal/generator/builder"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/normalizer"
)

// ============================================================
// Scene Cache
// ============================================================

// SceneCache: внешняя мемоизация генератора по хешу нормализованной конфигурации.
// Хранит не больше capacity сцен, старые вытесняются первыми. Наружу отдаются копии.
type SceneCache struct {
	mu       sync.Mutex
	capacity int
	scenes   map[string]*models.Scene // hash -> scene
	order    []string

	assembler *builder.Assembler
}

func NewSceneCache(capacity int) *SceneCache {
	if capacity < 1 {
		capacity = 1
	}
	return &SceneCache{
		capacity:  capacity,
		scenes:    make(map[string]*models.Scene),
		assembler: builder.New(),
	}
}

// Generate возвращает сцену из кеша или строит новую. Второе значение: попадание в кеш.
func (c *SceneCache) Generate(cfg models.BuildingConfig) (*models.Scene, bool, error) {
	b, err := normalizer.Normalize(cfg)
	if err != nil {
		return nil, false, err
	}
	hash, err := normalizer.Hash(b)
	if err != nil {
		return nil, false, err
	}

	if scene, ok := c.lookup(hash); ok {
		return scene, true, nil
	}

	scene, err := c.assembler.Build(b)
	if err != nil {
		return nil, false, err
	}

	c.store(hash, scene)
	return CloneScene(scene), false, nil
}

func (c *SceneCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.scenes)
}

func (c *SceneCache) lookup(hash string) (*models.Scene, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	scene, ok := c.scenes[hash]
	if !ok {
		return nil, false
	}
	return CloneScene(scene), true
}

func (c *SceneCache) store(hash string, scene *models.Scene) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.scenes[hash]; ok {
		return
	}
	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.scenes, oldest)
	}
	c.scenes[hash] = scene
	c.order = append(c.order, hash)
}

// ============================================================
// Deep copy
// ============================================================

func CloneScene(s *models.Scene) *models.Scene {
	if s == nil {
		return nil
	}

	out := *s
	out.FramePositions = append([]float64(nil), s.FramePositions...)
	out.Counts = make(map[models.Category]int, len(s.Counts))
	for k, v := range s.Counts {
		out.Counts[k] = v
	}
	out.Elements = make([]models.StructuralElement, len(s.Elements))
	for i, e := range s.Elements {
		out.Elements[i] = cloneElement(e)
	}
	return &out
}

func cloneElement(e models.StructuralElement) models.StructuralElement {
	if e.Geometry.Size != nil {
		size := *e.Geometry.Size
		e.Geometry.Size = &size
	}
	if e.Geometry.Vertices != nil {
		e.Geometry.Vertices = append([]models.Vec3(nil), e.Geometry.Vertices...)
	}
	if e.Geometry.Indices != nil {
		e.Geometry.Indices = append([]int(nil), e.Geometry.Indices...)
	}
	return e
}
