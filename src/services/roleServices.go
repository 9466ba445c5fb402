package services

import (
	"errors"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

func (s *RoleService) List() ([]models.RoleModel, error) {
	var roles []models.RoleModel
	err := s.db.Order("id ASC").Find(&roles).Error
	return roles, err
}

func (s *RoleService) Create(nameEn, nameAr string) (*models.RoleModel, error) {
	role := models.RoleModel{NameEn: nameEn, NameAr: nameAr}
	if err := s.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) Update(id int, nameEn, nameAr string) (*models.RoleModel, error) {
	var role models.RoleModel
	if err := s.db.First(&role, id).Error; err != nil {
		return nil, utils.NotFoundError("Role not found", "هذا الدور غير موجود")
	}
	if err := s.db.Model(&role).Updates(map[string]interface{}{
		"name_en": nameEn,
		"name_ar": nameAr,
	}).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Delete removes a role along with its feature links. The admin role and any
// role still assigned to users are protected.
func (s *RoleService) Delete(id int) error {
	if id == middleware.AdminRoleID {
		return utils.ForbiddenError("The admin role cannot be deleted", "لا يمكن حذف دور مدير النظام")
	}

	var inUse int64
	if err := s.db.Model(&models.UserModel{}).
		Where("role_id = ? AND is_deleted = ?", id, false).
		Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return utils.ForbiddenError("Role is still assigned to users", "لا يمكن حذف دور مازال مسنداً لمستخدمين")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&models.RoleFeatureModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.RoleModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.NotFoundError("Role not found", "هذا الدور غير موجود")
		}
		return nil
	})
}

func (s *RoleService) ListFeatures() ([]models.AppFeatureModel, error) {
	var features []models.AppFeatureModel
	err := s.db.Where("is_deleted = ?", false).Order("id ASC").Find(&features).Error
	return features, err
}

func (s *RoleService) CreateFeature(nameEn, nameAr, route string) (*models.AppFeatureModel, error) {
	feature := models.AppFeatureModel{NameEn: nameEn, NameAr: nameAr, Route: route}
	if err := s.db.Create(&feature).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

func (s *RoleService) DeleteFeature(id int) error {
	result := s.db.Model(&models.AppFeatureModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Feature not found", "هذه الخاصية غير موجودة")
	}
	return nil
}

// SetRoleFeatures replaces a role's feature set with the given ids.
func (s *RoleService) SetRoleFeatures(roleID int, featureIDs []int) error {
	var role models.RoleModel
	if err := s.db.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Role not found", "هذا الدور غير موجود")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, featureID := range featureIDs {
			var feature models.AppFeatureModel
			if err := tx.Where("id = ? AND is_deleted = ?", featureID, false).First(&feature).Error; err != nil {
				return utils.InvalidReferenceError("Invalid FeatureId", "رقم الخاصية غير صحيح")
			}
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RoleFeatureModel{}).Error; err != nil {
			return err
		}
		for _, featureID := range featureIDs {
			link := models.RoleFeatureModel{RoleID: roleID, AppFeatureID: featureID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RoleFeatures lists the features a role can use; the frontend builds its
// menus from this.
func (s *RoleService) RoleFeatures(roleID int) ([]models.AppFeatureModel, error) {
	var features []models.AppFeatureModel
	err := s.db.Table("app_feature_models").
		Joins("JOIN role_feature_models ON role_feature_models.app_feature_id = app_feature_models.id").
		Where("role_feature_models.role_id = ? AND app_feature_models.is_deleted = ?", roleID, false).
		Order("app_feature_models.id ASC").
		Find(&features).Error
	return features, err
}
