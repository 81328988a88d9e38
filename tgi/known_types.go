package tgi

// Known type codes, as catalogued for The Sims 2 packages.
const (
	TypeUserInterface                 TypeCode = 0x00000000
	TypeWallGraph                     TypeCode = 0x0A284D0B
	TypeTrackSettings                 TypeCode = 0x0B9EB87E
	TypeLotDescription                TypeCode = 0x0BF999E7
	TypeMeshOverlayXML                TypeCode = 0x0C1FE246
	TypeBinaryIndex                   TypeCode = 0x0C560F39
	TypeJPEGImage1                    TypeCode = 0x0C7E9A76
	TypePoolSurface                   TypeCode = 0x0C900FDB
	TypeFaceModifierXML               TypeCode = 0x0C93E3DE
	TypeBusinessInfo                  TypeCode = 0x104F6A6E
	TypeTextureResource               TypeCode = 0x1C4A276C
	TypeAudio                         TypeCode = 0x2026960B
	TypeSceneNode                     TypeCode = 0x25232B11
	TypeArray3D                       TypeCode = 0x2A51171B
	TypeTextureOverlayXML             TypeCode = 0x2C1FD8A1
	TypeFenceArchThumbnail            TypeCode = 0x2C30E040
	TypePopupTracker                  TypeCode = 0x2C310F46
	TypeFoundationOrPoolThumbnail     TypeCode = 0x2C43CBD4
	TypeDormerThumbnail               TypeCode = 0x2C488BCA
	TypeFenceXML                      TypeCode = 0x2CB230B8
	TypeSimScores                     TypeCode = 0x3053CF74
	TypeSimanticsBehaviourConstants   TypeCode = 0x42434F4E
	TypeSimanticsBehaviourFunction    TypeCode = 0x42484156
	TypeBitmapImage                   TypeCode = 0x424D505F
	TypeCatalogString                 TypeCode = 0x43415453
	TypeImageLink                     TypeCode = 0x43494745
	TypeCatalogDescription            TypeCode = 0x43545353
	TypeDrawGroup                     TypeCode = 0x44475250
	TypeFaceProperties                TypeCode = 0x46414345
	TypeFamilyData                    TypeCode = 0x46414D68
	TypeFamilyInformation             TypeCode = 0x46414D49
	TypeGlobalTuningValues            TypeCode = 0x46434E53
	TypeAudioReference                TypeCode = 0x46574156
	TypeGlobalData                    TypeCode = 0x474C4F42
	TypeHouseData                     TypeCode = 0x484F5553
	TypeMaterialDefinition            TypeCode = 0x49596978
	TypeWorldDatabase                 TypeCode = 0x49FF7D76
	TypeTerrainTextureMap             TypeCode = 0x4B58975B
	TypeSkinToneXML                   TypeCode = 0x4C158081
	TypeMaterialOverride              TypeCode = 0x4C697E5A
	TypeCinematicScene                TypeCode = 0x4D51F042
	TypeJPEGImage2                    TypeCode = 0x4D533EDD
	TypeFloorXML                      TypeCode = 0x4DCADB7E
	TypeNeighborhoodData              TypeCode = 0x4E474248
	TypeNameReference                 TypeCode = 0x4E524546
	TypeNameMap                       TypeCode = 0x4E6D6150
	TypeObjectData                    TypeCode = 0x4F424A44
	TypeObjectFunctions               TypeCode = 0x4F424A66
	TypeObjectMetadata                TypeCode = 0x4F626A4D
	TypeInventoryItem                 TypeCode = 0x4F6FD33D
	TypeImageColorPalette             TypeCode = 0x50414C54
	TypeSimPersonalInformation        TypeCode = 0x50455253
	TypeStackScript                   TypeCode = 0x504F5349
	TypePackageToolkit                TypeCode = 0x50544250
	TypeSimInformation                TypeCode = 0x53494D49
	TypeObjectSlot                    TypeCode = 0x534C4F54
	TypeSprites                       TypeCode = 0x53505232
	TypeTextList                      TypeCode = 0x53545223
	TypeTATT                          TypeCode = 0x54415454
	TypeEdithSimanticsBehaviourLabels TypeCode = 0x54505250
	TypeBehaviourConstantsLabels      TypeCode = 0x5452434E
	TypeEdithFlowchartTrees           TypeCode = 0x54524545
	TypeGroupsCache                   TypeCode = 0x54535053
	TypePieMenuFunctions              TypeCode = 0x54544142
	TypePieMenuStrings                TypeCode = 0x54544173
	TypeMaterialObjectXML             TypeCode = 0x584D544F
	TypeObjectClassDump               TypeCode = 0x584F424A
	TypeSimPEObjectLua                TypeCode = 0x61754C1B
	TypeEnvironmentCubeLighting       TypeCode = 0x6A97042F
	TypeArray2D                       TypeCode = 0x6B943B43
	TypeCollection                    TypeCode = 0x6C4F359D
	TypeLotInformation                TypeCode = 0x6C589723
	TypeFaceNeutralXML                TypeCode = 0x6C93B566
	TypeNeighbourhoodObjectXML        TypeCode = 0x6D619378
	TypeWantsTreeItemXML              TypeCode = 0x6D814AFE
	TypeMainLotObjects                TypeCode = 0x6F626A74
	TypeUnlockableRewards             TypeCode = 0x7181C501
	TypeAudioResource                 TypeCode = 0x7B1ACFCD
	TypeGeometricNode                 TypeCode = 0x7BA3838C
	TypeImage                         TypeCode = 0x856DDBAC
	TypeWallLayer                     TypeCode = 0x8A84D7B0
	TypeHairToneXML                   TypeCode = 0x8C1580B5
	TypeWallThumbnail                 TypeCode = 0x8C31125E
	TypeFloorThumbnail                TypeCode = 0x8C311262
	TypeJPEGImage3                    TypeCode = 0x8C3CE95A
	TypeFamilyTies                    TypeCode = 0x8C870743
	TypeFaceRegionXML                 TypeCode = 0x8C93BF6C
	TypeFaceArchetypeXML              TypeCode = 0x8C93E35C
	TypePredictiveMap                 TypeCode = 0x8CC0A14B
	TypeSoundEffects                  TypeCode = 0x8DB5E4C2
	TypeAcceleratorKeyDefinitions     TypeCode = 0xA2E3D533
	TypePersonData                    TypeCode = 0xAACE2EFB
	TypeFencePostLayer                TypeCode = 0xAB4BA572
	TypeRoofData                      TypeCode = 0xAB9406AA
	TypeNeighbourhoodTerrainGeometry  TypeCode = 0xABCB5DA4
	TypeNeighborhoodTerrain           TypeCode = 0xABD0DC63
	TypeLinearFogLighting             TypeCode = 0xAC06A66F
	TypeDrawStateLighting             TypeCode = 0xAC06A676
	TypeThumbnail                     TypeCode = 0xAC2950C1
	TypeGeometricDataContainer        TypeCode = 0xAC4F8687
	TypeIDReferenceFile               TypeCode = 0xAC506764
	TypeSimDataXML                    TypeCode = 0xAC598EAC
	TypeNeighbourhoodID               TypeCode = 0xAC8A7A2E
	TypeRoofXML                       TypeCode = 0xACA8EA06
	TypeSurfaceTexture                TypeCode = 0xACE46235
	TypeLightOverride                 TypeCode = 0xADEE8D84
	TypeTSSGSystem                    TypeCode = 0xBA353CE1
	TypeAmbientLight                  TypeCode = 0xC9C81B9B
	TypeDirectionalLight              TypeCode = 0xC9C81BA3
	TypePointLight                    TypeCode = 0xC9C81BA9
	TypeSpotlight                     TypeCode = 0xC9C81BAD
	TypeStringMap                     TypeCode = 0xCAC4FC40
	TypeVertexLayer                   TypeCode = 0xCB4387A1
	TypeFenceThumbnail                TypeCode = 0xCC30CDF8
	TypeSimRelations                  TypeCode = 0xCC364C2A
	TypeModularStairThumbnail         TypeCode = 0xCC44B5EC
	TypeRoofThumbnail                 TypeCode = 0xCC489E46
	TypeChimneyThumbnail              TypeCode = 0xCC48C51F
	TypeWallXML                       TypeCode = 0xCCA8E925
	TypeFacialStructure               TypeCode = 0xCCCEF852
	TypeMaxisMaterialShader           TypeCode = 0xCD7FE87A
	TypeWantsAndFears                 TypeCode = 0xCD95548E
	TypeContentRegistry               TypeCode = 0xCDB467B8
	TypePetBodyOptions                TypeCode = 0xD1954460
	TypeCreationResource              TypeCode = 0xE519C933
	TypeDirectory                     TypeCode = 0xE86B1EEF
	TypeEffectsResourceTree           TypeCode = 0xEA5118B0
	TypePropertySet                   TypeCode = 0xEBCF3E27
	TypeSimDNA                        TypeCode = 0xEBFEE33F
	TypeVersionInformation            TypeCode = 0xEBFEE342
	TypeAudioTestSettings             TypeCode = 0xEBFEE345
	TypeTerrainThumbnail              TypeCode = 0xEC3126C4
	TypeHoodCamera                    TypeCode = 0xEC44BDDC
	TypeLevelInformation              TypeCode = 0xED534136
	TypeWantsXML                      TypeCode = 0xED7D7B4D
	TypeAwningThumbnail               TypeCode = 0xF03D464C
	TypeSingularLotObject             TypeCode = 0xFA1C39F7
	TypeAnimation                     TypeCode = 0xFB00791E
	TypeShape                         TypeCode = 0xFC6EB1F7
)

// knownTypes maps every known type code to its properties.
var knownTypes = map[TypeCode]Properties{
	TypeUserInterface:                 {Name: "User Interface", Abbreviation: "UI", Extensions: []string{"ui.txt"}, EmbeddedFilename: false},
	TypeWallGraph:                     {Name: "Wall Graph", Abbreviation: "WGRA", Extensions: nil, EmbeddedFilename: false},
	TypeTrackSettings:                 {Name: "Track Settings", Abbreviation: "TRKS", Extensions: nil, EmbeddedFilename: false},
	TypeLotDescription:                {Name: "Lot Description", Abbreviation: "LTXT", Extensions: nil, EmbeddedFilename: false},
	TypeMeshOverlayXML:                {Name: "Mesh Overlay XML", Abbreviation: "XMOL", Extensions: []string{"mesh_overlay.xml"}, EmbeddedFilename: false},
	TypeBinaryIndex:                   {Name: "Binary Index", Abbreviation: "BINX", Extensions: nil, EmbeddedFilename: false},
	TypeJPEGImage1:                    {Name: "JPEG Image", Abbreviation: "JPEG", Extensions: nil, EmbeddedFilename: false},
	TypePoolSurface:                   {Name: "Pool Surface", Abbreviation: "POOL", Extensions: nil, EmbeddedFilename: false},
	TypeFaceModifierXML:               {Name: "Face Modifier XML", Abbreviation: "XFMD", Extensions: []string{"face_mod.xml"}, EmbeddedFilename: false},
	TypeBusinessInfo:                  {Name: "Business Info", Abbreviation: "BNFO", Extensions: nil, EmbeddedFilename: false},
	TypeTextureResource:               {Name: "Texture Resource", Abbreviation: "TXTR", Extensions: []string{"6tx"}, EmbeddedFilename: false},
	TypeAudio:                         {Name: "Audio", Abbreviation: "XA", Extensions: nil, EmbeddedFilename: false},
	TypeSceneNode:                     {Name: "Scene Node", Abbreviation: "5SC", Extensions: []string{"5sc"}, EmbeddedFilename: false},
	TypeArray3D:                       {Name: "Array 3D", Abbreviation: "3ARY", Extensions: nil, EmbeddedFilename: false},
	TypeTextureOverlayXML:             {Name: "Texture Overlay XML", Abbreviation: "XTOL", Extensions: []string{"texture_overlay.xml"}, EmbeddedFilename: false},
	TypeFenceArchThumbnail:            {Name: "Fence Arch Thumbnail", Abbreviation: "THUB", Extensions: []string{"fence_arch_thumb.jpg"}, EmbeddedFilename: false},
	TypePopupTracker:                  {Name: "Popup Tracker", Abbreviation: "POPT", Extensions: nil, EmbeddedFilename: false},
	TypeFoundationOrPoolThumbnail:     {Name: "Foundation Or Pool Thumbnail", Abbreviation: "THUB", Extensions: []string{"pool_thumb.jpg"}, EmbeddedFilename: false},
	TypeDormerThumbnail:               {Name: "Dormer Thumbnail", Abbreviation: "THUB", Extensions: []string{"dormer_thumb.jpg"}, EmbeddedFilename: false},
	TypeFenceXML:                      {Name: "Fence XML", Abbreviation: "XFNC", Extensions: []string{"fence.xml"}, EmbeddedFilename: false},
	TypeSimScores:                     {Name: "Sim Scores", Abbreviation: "SCOR", Extensions: nil, EmbeddedFilename: false},
	TypeSimanticsBehaviourConstants:   {Name: "Simantics Behaviour Constants", Abbreviation: "BCON", Extensions: nil, EmbeddedFilename: true},
	TypeSimanticsBehaviourFunction:    {Name: "Simantics Behaviour Function", Abbreviation: "BHAV", Extensions: nil, EmbeddedFilename: true},
	TypeBitmapImage:                   {Name: "Bitmap Image", Abbreviation: "BMP", Extensions: []string{"bmp"}, EmbeddedFilename: true},
	TypeCatalogString:                 {Name: "Catalog String", Abbreviation: "CATS", Extensions: nil, EmbeddedFilename: false},
	TypeImageLink:                     {Name: "Image Link", Abbreviation: "CIGE", Extensions: nil, EmbeddedFilename: false},
	TypeCatalogDescription:            {Name: "Catalog Description", Abbreviation: "CTSS", Extensions: nil, EmbeddedFilename: true},
	TypeDrawGroup:                     {Name: "Draw Group", Abbreviation: "DGRP", Extensions: nil, EmbeddedFilename: false},
	TypeFaceProperties:                {Name: "Face Properties", Abbreviation: "FACE", Extensions: nil, EmbeddedFilename: false},
	TypeFamilyData:                    {Name: "Family Data", Abbreviation: "FAMH", Extensions: nil, EmbeddedFilename: false},
	TypeFamilyInformation:             {Name: "Family Information", Abbreviation: "FAMI", Extensions: nil, EmbeddedFilename: false},
	TypeGlobalTuningValues:            {Name: "Global Tuning Values", Abbreviation: "FCNS", Extensions: nil, EmbeddedFilename: false},
	TypeAudioReference:                {Name: "Audio Reference", Abbreviation: "FWAV", Extensions: nil, EmbeddedFilename: false},
	TypeGlobalData:                    {Name: "Global Data", Abbreviation: "GLOB", Extensions: nil, EmbeddedFilename: true},
	TypeHouseData:                     {Name: "House Data", Abbreviation: "HOUS", Extensions: nil, EmbeddedFilename: false},
	TypeMaterialDefinition:            {Name: "Material Definition", Abbreviation: "TXMT", Extensions: []string{"5tm"}, EmbeddedFilename: false},
	TypeWorldDatabase:                 {Name: "World Database", Abbreviation: "WRLD", Extensions: nil, EmbeddedFilename: false},
	TypeTerrainTextureMap:             {Name: "Terrain Texture Map", Abbreviation: "TMAP", Extensions: nil, EmbeddedFilename: false},
	TypeSkinToneXML:                   {Name: "Skin Tone XML", Abbreviation: "XSTN", Extensions: []string{"skin_tone.xml"}, EmbeddedFilename: false},
	TypeMaterialOverride:              {Name: "Material Override", Abbreviation: "MMAT", Extensions: nil, EmbeddedFilename: false},
	TypeCinematicScene:                {Name: "Cinematic Scene", Abbreviation: "CINE", Extensions: []string{"5cs"}, EmbeddedFilename: false},
	TypeJPEGImage2:                    {Name: "JPEG Image", Abbreviation: "JPEG", Extensions: []string{"1.jpg"}, EmbeddedFilename: false},
	TypeFloorXML:                      {Name: "Floor XML", Abbreviation: "XFLR", Extensions: []string{"floor.xml"}, EmbeddedFilename: false},
	TypeNeighborhoodData:              {Name: "Neighborhood Data", Abbreviation: "NGBH", Extensions: nil, EmbeddedFilename: false},
	TypeNameReference:                 {Name: "Name Reference", Abbreviation: "NREF", Extensions: nil, EmbeddedFilename: true},
	TypeNameMap:                       {Name: "Name Map", Abbreviation: "NMAP", Extensions: nil, EmbeddedFilename: false},
	TypeObjectData:                    {Name: "Object Data", Abbreviation: "OBJD", Extensions: nil, EmbeddedFilename: true},
	TypeObjectFunctions:               {Name: "Object Functions", Abbreviation: "OBJF", Extensions: nil, EmbeddedFilename: true},
	TypeObjectMetadata:                {Name: "Object Metadata", Abbreviation: "OBJM", Extensions: nil, EmbeddedFilename: false},
	TypeInventoryItem:                 {Name: "Inventory Item", Abbreviation: "INIT", Extensions: nil, EmbeddedFilename: false},
	TypeImageColorPalette:             {Name: "Image Color Palette", Abbreviation: "PALT", Extensions: nil, EmbeddedFilename: false},
	TypeSimPersonalInformation:        {Name: "Sim Personal Information", Abbreviation: "PERS", Extensions: nil, EmbeddedFilename: false},
	TypeStackScript:                   {Name: "Stack Script", Abbreviation: "POSI", Extensions: nil, EmbeddedFilename: false},
	TypePackageToolkit:                {Name: "Package Toolkit", Abbreviation: "PTBP", Extensions: nil, EmbeddedFilename: false},
	TypeSimInformation:                {Name: "Sim Information", Abbreviation: "SIMI", Extensions: nil, EmbeddedFilename: false},
	TypeObjectSlot:                    {Name: "Object Slot", Abbreviation: "SLOT", Extensions: nil, EmbeddedFilename: false},
	TypeSprites:                       {Name: "Sprites", Abbreviation: "SPR2", Extensions: nil, EmbeddedFilename: true},
	TypeTextList:                      {Name: "Text List", Abbreviation: "STR", Extensions: nil, EmbeddedFilename: true},
	TypeTATT:                          {Name: "TATT", Abbreviation: "TATT", Extensions: nil, EmbeddedFilename: true},
	TypeEdithSimanticsBehaviourLabels: {Name: "Edith Simantics Behaviour Labels", Abbreviation: "TPRP", Extensions: nil, EmbeddedFilename: true},
	TypeBehaviourConstantsLabels:      {Name: "Behaviour Constants Labels", Abbreviation: "TRCN", Extensions: nil, EmbeddedFilename: false},
	TypeEdithFlowchartTrees:           {Name: "Edith Flowchart Trees", Abbreviation: "TREE", Extensions: []string{"tree.txt"}, EmbeddedFilename: true},
	TypeGroupsCache:                   {Name: "Groups Cache", Abbreviation: "GROP", Extensions: nil, EmbeddedFilename: false},
	TypePieMenuFunctions:              {Name: "Pie Menu Functions", Abbreviation: "TTAB", Extensions: nil, EmbeddedFilename: true},
	TypePieMenuStrings:                {Name: "Pie Menu Strings", Abbreviation: "TTAS", Extensions: nil, EmbeddedFilename: true},
	TypeMaterialObjectXML:             {Name: "Material Object XML", Abbreviation: "XMTO", Extensions: []string{"material_object.xml"}, EmbeddedFilename: false},
	TypeObjectClassDump:               {Name: "Object Class Dump", Abbreviation: "XOBJ", Extensions: []string{"object.1.xml"}, EmbeddedFilename: false},
	TypeSimPEObjectLua:                {Name: "SimPE Object Lua", Abbreviation: "SLUA", Extensions: nil, EmbeddedFilename: false},
	TypeEnvironmentCubeLighting:       {Name: "Environment Cube Lighting", Abbreviation: "5EL", Extensions: nil, EmbeddedFilename: false},
	TypeArray2D:                       {Name: "Array 2D", Abbreviation: "2ARY", Extensions: nil, EmbeddedFilename: false},
	TypeCollection:                    {Name: "Collection", Abbreviation: "COLL", Extensions: nil, EmbeddedFilename: false},
	TypeLotInformation:                {Name: "Lot Information", Abbreviation: "LOT", Extensions: nil, EmbeddedFilename: false},
	TypeFaceNeutralXML:                {Name: "Face Neutral XML", Abbreviation: "XFNU", Extensions: []string{"face_neutral.xml"}, EmbeddedFilename: false},
	TypeNeighbourhoodObjectXML:        {Name: "Neighbourhood Object XML", Abbreviation: "XNGB", Extensions: []string{"neighbourhood_object.xml"}, EmbeddedFilename: false},
	TypeWantsTreeItemXML:              {Name: "Wants Tree Item XML", Abbreviation: "WNTT", Extensions: []string{"wants_tree_item.xml"}, EmbeddedFilename: false},
	TypeMainLotObjects:                {Name: "Main Lot Objects", Abbreviation: "MOBJT", Extensions: nil, EmbeddedFilename: false},
	TypeUnlockableRewards:             {Name: "Unlockable Rewards", Abbreviation: "REWD", Extensions: []string{"rewards.txt"}, EmbeddedFilename: false},
	TypeAudioResource:                 {Name: "Audio Resource", Abbreviation: "AUDR", Extensions: nil, EmbeddedFilename: false},
	TypeGeometricNode:                 {Name: "Geometric Node", Abbreviation: "GMND", Extensions: []string{"5gn"}, EmbeddedFilename: false},
	TypeImage:                         {Name: "Image", Abbreviation: "IMG", Extensions: []string{"img.jpg"}, EmbeddedFilename: false},
	TypeWallLayer:                     {Name: "Wall Layer", Abbreviation: "WLL", Extensions: nil, EmbeddedFilename: false},
	TypeHairToneXML:                   {Name: "Hair Tone XML", Abbreviation: "XHTN", Extensions: []string{"hair_tone.xml"}, EmbeddedFilename: false},
	TypeWallThumbnail:                 {Name: "Wall Thumbnail", Abbreviation: "THUB", Extensions: []string{"wall_thumb.jpg"}, EmbeddedFilename: false},
	TypeFloorThumbnail:                {Name: "Floor Thumbnail", Abbreviation: "THUB", Extensions: []string{"floor_thumb.jpg"}, EmbeddedFilename: false},
	TypeJPEGImage3:                    {Name: "JPEG Image", Abbreviation: "JPEG", Extensions: []string{"2.jpg"}, EmbeddedFilename: false},
	TypeFamilyTies:                    {Name: "Family Ties", Abbreviation: "FAMT", Extensions: nil, EmbeddedFilename: false},
	TypeFaceRegionXML:                 {Name: "Face Region XML", Abbreviation: "XFRG", Extensions: []string{"face_region.xml"}, EmbeddedFilename: false},
	TypeFaceArchetypeXML:              {Name: "Face Archetype XML", Abbreviation: "XFCH", Extensions: []string{"face_arch.xml"}, EmbeddedFilename: false},
	TypePredictiveMap:                 {Name: "Predictive Map", Abbreviation: "PMAP", Extensions: nil, EmbeddedFilename: false},
	TypeSoundEffects:                  {Name: "Sound Effects", Abbreviation: "SFX", Extensions: nil, EmbeddedFilename: false},
	TypeAcceleratorKeyDefinitions:     {Name: "Accelerator Key Definitions", Abbreviation: "KEYD", Extensions: []string{"keys.txt"}, EmbeddedFilename: false},
	TypePersonData:                    {Name: "Person Data", Abbreviation: "PDAT", Extensions: nil, EmbeddedFilename: false},
	TypeFencePostLayer:                {Name: "Fence Post Layer", Abbreviation: "FPL", Extensions: nil, EmbeddedFilename: false},
	TypeRoofData:                      {Name: "Roof Data", Abbreviation: "ROOF", Extensions: nil, EmbeddedFilename: false},
	TypeNeighbourhoodTerrainGeometry:  {Name: "Neighbourhood Terrain Geometry", Abbreviation: "NHTG", Extensions: nil, EmbeddedFilename: false},
	TypeNeighborhoodTerrain:           {Name: "Neighborhood Terrain", Abbreviation: "NHTR", Extensions: nil, EmbeddedFilename: false},
	TypeLinearFogLighting:             {Name: "Linear Fog Lighting", Abbreviation: "5LF", Extensions: []string{"5lf"}, EmbeddedFilename: false},
	TypeDrawStateLighting:             {Name: "Draw State Lighting", Abbreviation: "5DS", Extensions: []string{"5ds"}, EmbeddedFilename: false},
	TypeThumbnail:                     {Name: "Thumbnail", Abbreviation: "THUB", Extensions: []string{"thumb.jpg"}, EmbeddedFilename: false},
	TypeGeometricDataContainer:        {Name: "Geometric Data Container", Abbreviation: "GMDC", Extensions: []string{"5gd", "gmdc"}, EmbeddedFilename: false},
	TypeIDReferenceFile:               {Name: "3D ID Referencing File", Abbreviation: "3IDR", Extensions: nil, EmbeddedFilename: false},
	TypeSimDataXML:                    {Name: "Sim Data XML", Abbreviation: "XSIM", Extensions: nil, EmbeddedFilename: false},
	TypeNeighbourhoodID:               {Name: "Neighbourhood ID", Abbreviation: "NID", Extensions: nil, EmbeddedFilename: false},
	TypeRoofXML:                       {Name: "Roof XML", Abbreviation: "XROF", Extensions: []string{"roof.xml"}, EmbeddedFilename: false},
	TypeSurfaceTexture:                {Name: "Surface Texture", Abbreviation: "STXR", Extensions: nil, EmbeddedFilename: false},
	TypeLightOverride:                 {Name: "Light Override", Abbreviation: "NLO", Extensions: []string{"nlo"}, EmbeddedFilename: false},
	TypeTSSGSystem:                    {Name: "TSSG System", Abbreviation: "TSSG", Extensions: nil, EmbeddedFilename: false},
	TypeAmbientLight:                  {Name: "Ambient Light", Abbreviation: "LGHT", Extensions: []string{"5al"}, EmbeddedFilename: false},
	TypeDirectionalLight:              {Name: "Directional Light", Abbreviation: "LGHT", Extensions: []string{"5dl"}, EmbeddedFilename: false},
	TypePointLight:                    {Name: "Point Light", Abbreviation: "LGHT", Extensions: []string{"5pl"}, EmbeddedFilename: false},
	TypeSpotlight:                     {Name: "Spotlight", Abbreviation: "LGHT", Extensions: []string{"5sl"}, EmbeddedFilename: false},
	TypeStringMap:                     {Name: "String Map", Abbreviation: "SMAP", Extensions: nil, EmbeddedFilename: false},
	TypeVertexLayer:                   {Name: "Vertex Layer", Abbreviation: "VERT", Extensions: nil, EmbeddedFilename: false},
	TypeFenceThumbnail:                {Name: "Fence Thumbnail", Abbreviation: "THUB", Extensions: []string{"fence_thumb.jpg"}, EmbeddedFilename: false},
	TypeSimRelations:                  {Name: "Sim Relations", Abbreviation: "SREL", Extensions: nil, EmbeddedFilename: false},
	TypeModularStairThumbnail:         {Name: "Modular Stair Thumbnail", Abbreviation: "THUB", Extensions: []string{"modular_stair_thumb.jpg"}, EmbeddedFilename: false},
	TypeRoofThumbnail:                 {Name: "Roof Thumbnail", Abbreviation: "THUB", Extensions: []string{"roof_thumbnail.jpg"}, EmbeddedFilename: false},
	TypeChimneyThumbnail:              {Name: "Chimney Thumbnail", Abbreviation: "THUB", Extensions: []string{"chimney_thumbnail.jpg"}, EmbeddedFilename: false},
	TypeWallXML:                       {Name: "Wall XML", Abbreviation: "XWLL", Extensions: []string{"wall.xml"}, EmbeddedFilename: false},
	TypeFacialStructure:               {Name: "Facial Structure", Abbreviation: "LXNR", Extensions: nil, EmbeddedFilename: false},
	TypeMaxisMaterialShader:           {Name: "Maxis Material Shader", Abbreviation: "MATSHAD", Extensions: []string{"mat.txt"}, EmbeddedFilename: false},
	TypeWantsAndFears:                 {Name: "Wants And Fears", Abbreviation: "SWAF", Extensions: nil, EmbeddedFilename: false},
	TypeContentRegistry:               {Name: "Content Registry", Abbreviation: "CREG", Extensions: nil, EmbeddedFilename: false},
	TypePetBodyOptions:                {Name: "Pet Body Options", Abbreviation: "PBOP", Extensions: nil, EmbeddedFilename: false},
	TypeCreationResource:              {Name: "Creation Resource", Abbreviation: "CRES", Extensions: []string{"5cr"}, EmbeddedFilename: false},
	TypeDirectory:                     {Name: "DBPF Directory", Abbreviation: "DIR", Extensions: []string{"dir"}, EmbeddedFilename: false},
	TypeEffectsResourceTree:           {Name: "Effects Resource Tree", Abbreviation: "FX", Extensions: []string{"fx"}, EmbeddedFilename: false},
	TypePropertySet:                   {Name: "Property Set", Abbreviation: "GZPS", Extensions: nil, EmbeddedFilename: false},
	TypeSimDNA:                        {Name: "Sim DNA", Abbreviation: "SDNA", Extensions: nil, EmbeddedFilename: false},
	TypeVersionInformation:            {Name: "Version Information", Abbreviation: "VERS", Extensions: nil, EmbeddedFilename: false},
	TypeAudioTestSettings:             {Name: "Audio Test Settings", Abbreviation: "ATST", Extensions: nil, EmbeddedFilename: false},
	TypeTerrainThumbnail:              {Name: "Terrain Thumbnail", Abbreviation: "THUB", Extensions: []string{"terrain_thumb.jpg"}, EmbeddedFilename: false},
	TypeHoodCamera:                    {Name: "Hood Camera", Abbreviation: "HCAM", Extensions: nil, EmbeddedFilename: false},
	TypeLevelInformation:              {Name: "Level Information", Abbreviation: "LIFO", Extensions: []string{"6li"}, EmbeddedFilename: false},
	TypeWantsXML:                      {Name: "Wants XML", Abbreviation: "XWNT", Extensions: []string{"wants.xml"}, EmbeddedFilename: false},
	TypeAwningThumbnail:               {Name: "Awning Thumbnail", Abbreviation: "THUB", Extensions: []string{"awning_thumb.jpg"}, EmbeddedFilename: false},
	TypeSingularLotObject:             {Name: "Singular Lot Object", Abbreviation: "OBJT", Extensions: nil, EmbeddedFilename: false},
	TypeAnimation:                     {Name: "Animation", Abbreviation: "ANIM", Extensions: []string{"5an"}, EmbeddedFilename: false},
	TypeShape:                         {Name: "Shape", Abbreviation: "SHPE", Extensions: []string{"5sh"}, EmbeddedFilename: false},
}
