package models

// ============================================================
// Building configuration (input)
// ============================================================

// BuildingConfig: конфигурация в том виде, в каком её присылает редактор.
// Любое числовое поле может отсутствовать, значения по умолчанию
// подставляет normalizer.
type BuildingConfig struct {
	Dimensions    DimensionsConfig `json:"dimensions" yaml:"dimensions"`
	Roof          RoofConfig       `json:"roof" yaml:"roof"`
	Structure     StructureConfig  `json:"structure" yaml:"structure"`
	Visualization map[string]bool  `json:"visualization,omitempty" yaml:"visualization,omitempty"`
	Panels        PanelsConfig     `json:"panels" yaml:"panels"`
	Openings      OpeningsConfig   `json:"openings" yaml:"openings"`
}

type DimensionsConfig struct {
	Width      *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Depth      *float64 `json:"depth,omitempty" yaml:"depth,omitempty"`
	EaveHeight *float64 `json:"eaveHeight,omitempty" yaml:"eaveHeight,omitempty"`
	Height     *float64 `json:"height,omitempty" yaml:"height,omitempty"` // старое имя eaveHeight
	BaseHeight *float64 `json:"baseHeight,omitempty" yaml:"baseHeight,omitempty"`
}

type RoofConfig struct {
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Pitch       *float64 `json:"pitch,omitempty" yaml:"pitch,omitempty"` // градусы
	Slope       *float64 `json:"slope,omitempty" yaml:"slope,omitempty"` // x/12
	RidgeHeight *float64 `json:"ridgeHeight,omitempty" yaml:"ridgeHeight,omitempty"`
	Overhang    *float64 `json:"overhang,omitempty" yaml:"overhang,omitempty"`
	Color       string   `json:"color,omitempty" yaml:"color,omitempty"`
}

type StructureConfig struct {
	FrameSpacing *float64        `json:"frameSpacing,omitempty" yaml:"frameSpacing,omitempty"`
	Colors       StructureColors `json:"colors" yaml:"colors"`
}

type StructureColors struct {
	BasePlate          string `json:"basePlate,omitempty" yaml:"basePlate,omitempty"`
	PrimaryStructure   string `json:"primaryStructure,omitempty" yaml:"primaryStructure,omitempty"`
	SecondaryStructure string `json:"secondaryStructure,omitempty" yaml:"secondaryStructure,omitempty"`
	Bracing            string `json:"bracing,omitempty" yaml:"bracing,omitempty"`
}

type PanelsConfig struct {
	Count *int   `json:"count,omitempty" yaml:"count,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type OpeningsConfig struct {
	Door DoorConfig `json:"door" yaml:"door"`
}

type DoorConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Width   *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height  *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	X       *float64 `json:"x,omitempty" yaml:"x,omitempty"`
}

// ============================================================
// Normalized building
// ============================================================

type RoofType string

const (
	RoofFlat      RoofType = "flat"
	RoofDuoPitch  RoofType = "duo-pitch"
	RoofMonoPitch RoofType = "mono-pitch"
)

// Building: полностью заполненная конфигурация, с которой работают планировщики и билдеры.
// Верхние границы держат число примитивов конечным; те же числа стоят в building.schema.json.
type Building struct {
	Width        float64 `json:"width" validate:"gt=0,lte=1000"`
	Depth        float64 `json:"depth" validate:"gt=0,lte=1000"`
	EaveHeight   float64 `json:"eaveHeight" validate:"gt=0,lte=100"`
	BaseHeight   float64 `json:"baseHeight" validate:"gte=0,lte=10"`
	FrameSpacing float64 `json:"frameSpacing" validate:"gt=0,lte=1000"`

	Roof          Roof            `json:"roof"`
	Colors        StructureColors `json:"colors"`
	Panels        Panels          `json:"panels"`
	Door          Door            `json:"door"`
	Visualization Visualization   `json:"visualization"`
}

type Roof struct {
	Type         RoofType `json:"type" validate:"oneof=flat duo-pitch mono-pitch"`
	PitchDegrees float64  `json:"pitchDegrees" validate:"gte=0,lt=90"`
	SlopeRatio   float64  `json:"slopeRatio" validate:"gte=0"`
	RidgeHeight  float64  `json:"ridgeHeight" validate:"gte=0,lte=100"`
	Overhang     float64  `json:"overhang" validate:"gte=0,lte=10"`
	Color        string   `json:"color"`
}

type Panels struct {
	Count int    `json:"count" validate:"gte=1,lte=1000"`
	Color string `json:"color"`
}

type Door struct {
	Enabled bool    `json:"enabled"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	X       float64 `json:"x"`
}

// ============================================================
// Visualization toggles
// ============================================================

const (
	ToggleEdges      = "edges"
	ToggleFaces      = "faces"
	ToggleMainParts  = "mainParts"
	ToggleFrames     = "frames"
	ToggleBracing    = "bracing"
	TogglePurlins    = "purlins"
	ToggleGirts      = "girts"
	ToggleBasePlate  = "basePlate"
	TogglePanels     = "panels"
	ToggleSolidWalls = "solidWalls"
	ToggleOpenings   = "openings"
	ToggleDimensions = "dimensions"

	// Зарезервированы: принимаются, но геометрии не дают.
	ToggleFlashing    = "flashing"
	ToggleAccessories = "accessories"
	ToggleVolumes     = "volumes"
	ToggleRoads       = "roads"
	ToggleDecorations = "decorations"
)

// Visualization: открытое множество флажков. Неизвестные ключи игнорируются.
type Visualization map[string]bool

func (v Visualization) On(name string) bool {
	return v[name]
}

// ============================================================
// Output primitives
// ============================================================

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type GeometryKind string

const (
	GeometryBox   GeometryKind = "box"
	GeometryPlane GeometryKind = "plane"
	GeometryMesh  GeometryKind = "mesh"
	GeometryLine  GeometryKind = "line"
)

// Geometry описывает форму примитива в его локальных координатах.
// box: Size; plane: Width × Height; mesh: Vertices + Indices (тройки); line: Vertices.
type Geometry struct {
	Kind     GeometryKind `json:"kind"`
	Size     *Vec3        `json:"size,omitempty"`
	Width    float64      `json:"width,omitempty"`
	Height   float64      `json:"height,omitempty"`
	Vertices []Vec3       `json:"vertices,omitempty"`
	Indices  []int        `json:"indices,omitempty"`
}

type Category string

const (
	CategoryFoundation Category = "foundation"
	CategoryFrames     Category = "frames"
	CategoryBracing    Category = "bracing"
	CategoryGirts      Category = "girts"
	CategoryPurlins    Category = "purlins"
	CategoryRoof       Category = "roof"
	CategoryGables     Category = "gables"
	CategoryWalls      Category = "walls"
	CategoryOpenings   Category = "openings"
	CategoryDimensions Category = "dimensions"
)

type ElementKind string

const (
	KindFoundationSlab ElementKind = "foundation-slab"
	KindBasePlate      ElementKind = "base-plate"
	KindColumn         ElementKind = "column"
	KindTieBeam        ElementKind = "tie-beam"
	KindRafter         ElementKind = "rafter"
	KindRidgeBeam      ElementKind = "ridge-beam"
	KindBrace          ElementKind = "brace"
	KindGirt           ElementKind = "girt"
	KindPurlin         ElementKind = "purlin"
	KindRidgePurlin    ElementKind = "ridge-purlin"
	KindRoofSurface    ElementKind = "roof-surface"
	KindRidgeCap       ElementKind = "ridge-cap"
	KindFlatRoof       ElementKind = "flat-roof"
	KindGableEnd       ElementKind = "gable-end"
	KindWallPanel      ElementKind = "wall-panel"
	KindCorrugation    ElementKind = "corrugation"
	KindPanelStrip     ElementKind = "panel-strip"
	KindDoor           ElementKind = "door"
	KindDimensionLine  ElementKind = "dimension-line"
)

type Shading string

const (
	ShadingSolid     Shading = "solid"
	ShadingWireframe Shading = "wireframe"
	ShadingBasic     Shading = "solid-basic"
)

type MaterialStyle struct {
	Shading     Shading `json:"shading"`
	Color       string  `json:"color"`
	Opacity     float64 `json:"opacity"`
	Transparent bool    `json:"transparent"`
}

// StructuralElement: один примитив сцены. Создаётся заново на каждый вызов генерации.
type StructuralElement struct {
	Kind     ElementKind   `json:"kind"`
	Category Category      `json:"category"`
	Geometry Geometry      `json:"geometry"`
	Position Vec3          `json:"position"`
	Rotation Vec3          `json:"rotation"`
	Material MaterialStyle `json:"material"`
}

// ============================================================
// Planner outputs & scene
// ============================================================

type RoofGeometry struct {
	Type         RoofType `json:"type"`
	RafterLength float64  `json:"rafterLength"`
	RafterAngle  float64  `json:"rafterAngle"` // радианы
	RidgeY       float64  `json:"ridgeY"`
	EaveY        float64  `json:"eaveY"`
}

type Scene struct {
	Hash           string              `json:"hash"`
	FrameCount     int                 `json:"frameCount"`
	FramePositions []float64           `json:"framePositions"`
	Roof           RoofGeometry        `json:"roof"`
	Counts         map[Category]int    `json:"counts"`
	Elements       []StructuralElement `json:"elements"`
}
